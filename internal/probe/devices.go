package probe

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/danmuck/csictl/internal/tools"
)

const devicePrefix = "video"

// DeviceProbe enumerates V4L capture nodes under a device directory.
// An empty result set is a warning: the driver may simply not expose
// /dev/video* for CSI sensors, so the pipeline can still work.
type DeviceProbe struct {
	Dir  string
	list func(dir string) ([]string, error)
}

// NewDeviceProbe enumerates the local filesystem.
func NewDeviceProbe(dir string) DeviceProbe {
	return DeviceProbe{Dir: dir, list: listLocal}
}

// NewRemoteDeviceProbe enumerates through a runner, for checks against a
// remote host.
func NewRemoteDeviceProbe(runner tools.Runner, dir string) DeviceProbe {
	return DeviceProbe{Dir: dir, list: func(dir string) ([]string, error) {
		out, _, _, err := runner.Run("ls", "-1", dir)
		if err != nil {
			return nil, err
		}
		return strings.Fields(string(out)), nil
	}}
}

func (p DeviceProbe) Name() string { return "device-nodes" }

func (p DeviceProbe) Run() Result {
	entries, err := p.list(p.Dir)
	if err != nil {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("cannot list %s: %v", p.Dir, err),
		}
	}

	var nodes []string
	for _, name := range entries {
		if strings.HasPrefix(name, devicePrefix) {
			nodes = append(nodes, name)
		}
	}
	sort.Strings(nodes)

	if len(nodes) == 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("no devices found under %s matching %s*", p.Dir, devicePrefix),
		}
	}
	return Result{
		Name:    p.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("video nodes visible: %s", strings.Join(nodes, ", ")),
	}
}

func listLocal(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
