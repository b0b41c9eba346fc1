package probe

import (
	"fmt"
	"strings"

	"github.com/danmuck/csictl/internal/tools"
)

// DaemonProbe asks the service manager whether the camera daemon is
// active. Absence of systemctl itself is a warning, not a failure:
// containers routinely lack it while the daemon runs on the host.
type DaemonProbe struct {
	Runner tools.Runner
	Daemon string
}

func (p DaemonProbe) Name() string { return "daemon-status" }

func (p DaemonProbe) Run() Result {
	out, _, exit, err := p.Runner.Run("systemctl", "is-active", p.Daemon)
	if err != nil && (tools.IsMissingBinary(err) || exit == tools.MissingBinaryExit) {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "systemctl not found; skipping daemon check (expected in containers)",
		}
	}

	state := strings.TrimSpace(string(out))
	if state == "" {
		state = "unknown"
	}
	if exit == 0 && state == "active" {
		return Result{
			Name:    p.Name(),
			Status:  StatusOK,
			Message: fmt.Sprintf("%s is active", p.Daemon),
		}
	}
	return Result{
		Name:    p.Name(),
		Status:  StatusWarn,
		Message: fmt.Sprintf("%s is %s; try: sudo systemctl start %s", p.Daemon, state, p.Daemon),
	}
}
