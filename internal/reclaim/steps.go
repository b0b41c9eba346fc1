// Package reclaim implements the bulk container-runtime reclamation
// sweep: a fixed, ordered plan of best-effort delete operations behind a
// confirmation gate. Individual step failures are recorded, never
// propagated; the sweep always runs to completion.
package reclaim

// Step is one reclamation operation. When Collect is set, the step first
// runs the id query and skips the mutating command if nothing matched;
// the matched ids are appended to Args otherwise.
type Step struct {
	Name    string
	Collect []string
	Args    []string
	Empty   string
}

// Plan returns the reclamation steps in their fixed execution order.
// The order matters: containers must stop before removal, and the final
// system prune picks up whatever the targeted steps missed.
func Plan() []Step {
	return []Step{
		{
			Name:    "stop-containers",
			Collect: []string{"ps", "-q"},
			Args:    []string{"stop"},
			Empty:   "no running containers",
		},
		{
			Name:    "remove-containers",
			Collect: []string{"ps", "-aq"},
			Args:    []string{"rm", "-f"},
			Empty:   "no containers to remove",
		},
		{
			Name:    "remove-images",
			Collect: []string{"images", "-q"},
			Args:    []string{"rmi", "-f"},
			Empty:   "no images to remove",
		},
		{Name: "prune-build-cache", Args: []string{"builder", "prune", "-af"}},
		{Name: "prune-volumes", Args: []string{"volume", "prune", "-f"}},
		{Name: "prune-networks", Args: []string{"network", "prune", "-f"}},
		{Name: "system-prune", Args: []string{"system", "prune", "-af", "--volumes"}},
	}
}
