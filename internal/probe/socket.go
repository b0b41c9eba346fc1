package probe

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/danmuck/csictl/internal/tools"
)

// SocketProbe checks the Argus coordination socket the driver stack uses
// for IPC. When mounting it into a container, ownership and permissions
// are the usual failure, so the ok message includes both.
type SocketProbe struct {
	Path   string
	Daemon string
	stat   func(path string) (string, bool)
}

// NewSocketProbe stats the local filesystem.
func NewSocketProbe(path, daemon string) SocketProbe {
	return SocketProbe{Path: path, Daemon: daemon, stat: statLocal}
}

// NewRemoteSocketProbe stats through a runner, for checks against a
// remote host.
func NewRemoteSocketProbe(runner tools.Runner, path, daemon string) SocketProbe {
	return SocketProbe{Path: path, Daemon: daemon, stat: func(path string) (string, bool) {
		out, _, exit, err := runner.Run("ls", "-ld", path)
		if err != nil || exit != 0 {
			return "", false
		}
		return strings.TrimSpace(string(out)), true
	}}
}

func (p SocketProbe) Name() string { return "argus-socket" }

func (p SocketProbe) Run() Result {
	detail, ok := p.stat(p.Path)
	if !ok {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s missing; start %s on the host and mount the socket", p.Path, p.Daemon),
		}
	}
	return Result{
		Name:    p.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("%s exists %s", p.Path, detail),
	}
}

func statLocal(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return fmt.Sprintf("owner=%d:%d mode=%#o", st.Uid, st.Gid, info.Mode().Perm()), true
	}
	return fmt.Sprintf("mode=%#o", info.Mode().Perm()), true
}
