package pipeline

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/danmuck/csictl/internal/config"
	"github.com/danmuck/csictl/internal/testutil/testlog"
	"github.com/danmuck/csictl/internal/tools"
)

func TestBuildSubstitutesConfig(t *testing.T) {
	testlog.Start(t)

	cfg := config.Defaults()
	cfg.SensorID = 1
	cfg.Width = 640
	cfg.Height = 480
	cfg.FPS = 15
	cfg.Flip = 2

	argv := Build(cfg)
	if argv[0] != Binary {
		t.Fatalf("expected %s first, got %q", Binary, argv[0])
	}
	joined := strings.Join(argv, " ")
	for _, want := range []string{
		"sensor-id=1",
		"width=640,",
		"height=480,",
		"framerate=15/1",
		"flip-method=2",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in argv, got %q", want, joined)
		}
	}
	if strings.Contains(joined, "sensor-mode") {
		t.Fatalf("sensor-mode should be omitted when unset: %q", joined)
	}
}

func TestBuildIncludesSensorModeWhenSet(t *testing.T) {
	testlog.Start(t)

	cfg := config.Defaults()
	cfg.SensorMode = 4
	joined := strings.Join(Build(cfg), " ")
	if !strings.Contains(joined, "sensor-mode=4") {
		t.Fatalf("expected sensor-mode=4 in argv, got %q", joined)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	testlog.Start(t)

	cfg := config.Defaults()
	if !reflect.DeepEqual(Build(cfg), Build(cfg)) {
		t.Fatalf("Build is not deterministic")
	}
}

func TestLaunchPropagatesExitCode(t *testing.T) {
	testlog.Start(t)

	var stdout bytes.Buffer
	exit, err := Launch(tools.LocalRunner{}, []string{"sh", "-c", "echo frame; exit 7"}, &stdout, nil)
	if err == nil {
		t.Fatalf("expected error for non-zero exit")
	}
	if exit != 7 {
		t.Fatalf("expected exit 7, got %d", exit)
	}
	if strings.TrimSpace(stdout.String()) != "frame" {
		t.Fatalf("child stdout not streamed unmodified: %q", stdout.String())
	}
}

func TestLaunchEmptyArgv(t *testing.T) {
	testlog.Start(t)

	if _, err := Launch(tools.LocalRunner{}, nil, nil, nil); err == nil {
		t.Fatalf("expected error for empty argv")
	}
}
