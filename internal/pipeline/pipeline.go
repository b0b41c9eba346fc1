// Package pipeline builds and launches the verification capture
// pipeline. Building is pure: the same configuration always yields the
// same argument vector, and no I/O happens until Launch.
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/csictl/internal/config"
	"github.com/danmuck/csictl/internal/tools"
)

// Binary is the GStreamer launcher the argv targets.
const Binary = "gst-launch-1.0"

// verifySeconds bounds the test run; num-buffers makes gst-launch exit
// on its own instead of streaming forever.
const verifySeconds = 5

// Describe renders the element chain for the configured sensor, the same
// chain a streaming consumer would open via Argus.
func Describe(cfg config.Config) string {
	mode := ""
	if cfg.SensorMode != config.SensorModeUnset {
		mode = fmt.Sprintf(" sensor-mode=%d", cfg.SensorMode)
	}
	return fmt.Sprintf(
		"nvarguscamerasrc sensor-id=%d%s ! "+
			"video/x-raw(memory:NVMM), width=%d, height=%d, framerate=%d/1 ! "+
			"nvvidconv flip-method=%d ! video/x-raw, format=RGBA ! "+
			"fakesink num-buffers=%d sync=false",
		cfg.SensorID, mode, cfg.Width, cfg.Height, cfg.FPS, cfg.Flip,
		cfg.FPS*verifySeconds,
	)
}

// Build assembles the full argument vector, binary first.
func Build(cfg config.Config) []string {
	return append([]string{Binary}, strings.Fields(Describe(cfg))...)
}

// Launch runs the pipeline synchronously, streaming child output to the
// given writers unmodified, and returns the child's exit code.
func Launch(runner tools.Runner, argv []string, stdout, stderr io.Writer) (int, error) {
	if len(argv) == 0 {
		return 1, fmt.Errorf("empty pipeline argv")
	}
	log.Debug().Str("argv", strings.Join(argv, " ")).Msg("launching pipeline")
	return runner.RunStreaming(stdout, stderr, argv[0], argv[1:]...)
}
