// Package probe implements the precondition checks that run ahead of the
// capture pipeline. Probes are advisory: each reports ok or warn with a
// message, and a warning never stops the remaining probes or the
// pipeline launch.
package probe

import "github.com/rs/zerolog/log"

// Status classifies a probe outcome.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
)

// Result is one probe's immutable outcome.
type Result struct {
	Name    string
	Status  Status
	Message string
}

// Probe is a single non-destructive check of host state.
type Probe interface {
	Name() string
	Run() Result
}

// Sequence is an ordered set of probes. Order is fixed at construction
// and every probe runs exactly once per Run, regardless of earlier
// warnings.
type Sequence []Probe

// Run executes every probe in order, invoking emit (if non-nil) as each
// result arrives, and returns one result per registered probe.
func (s Sequence) Run(emit func(Result)) []Result {
	results := make([]Result, 0, len(s))
	for _, p := range s {
		res := p.Run()
		log.Debug().
			Str("probe", res.Name).
			Str("status", string(res.Status)).
			Msg(res.Message)
		if emit != nil {
			emit(res)
		}
		results = append(results, res)
	}
	return results
}

// Warnings counts warn results in a completed run.
func Warnings(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Status == StatusWarn {
			n++
		}
	}
	return n
}
