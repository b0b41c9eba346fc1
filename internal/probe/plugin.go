package probe

import (
	"fmt"

	"github.com/danmuck/csictl/internal/tools"
)

const inspectBinary = "gst-inspect-1.0"

// PluginProbe verifies a GStreamer element is installed by asking
// gst-inspect about it.
type PluginProbe struct {
	Runner tools.Runner
	Plugin string
}

func (p PluginProbe) Name() string { return "gst-plugin" }

func (p PluginProbe) Run() Result {
	_, _, exit, err := p.Runner.Run(inspectBinary, p.Plugin)
	if err != nil && (tools.IsMissingBinary(err) || exit == tools.MissingBinaryExit) {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s not found in PATH", inspectBinary),
		}
	}
	if exit != 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("gstreamer element %s not available (%s exit %d)", p.Plugin, inspectBinary, exit),
		}
	}
	return Result{
		Name:    p.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("gstreamer element %s available", p.Plugin),
	}
}
