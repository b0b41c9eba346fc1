package probe

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/csictl/internal/testutil/testlog"
)

type fakeRunner struct {
	stdout string
	exit   int
	err    error
	calls  [][]string
}

func (r *fakeRunner) Run(name string, args ...string) ([]byte, []byte, int, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return []byte(r.stdout), nil, r.exit, r.err
}

func (r *fakeRunner) RunStreaming(stdout, stderr io.Writer, name string, args ...string) (int, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.exit, r.err
}

func TestDeviceProbeEmptyDirWarns(t *testing.T) {
	testlog.Start(t)

	res := NewDeviceProbe(t.TempDir()).Run()
	if res.Status != StatusWarn {
		t.Fatalf("expected warn, got %q", res.Status)
	}
	if !strings.Contains(res.Message, "no devices") {
		t.Fatalf("expected 'no devices' in message, got %q", res.Message)
	}
}

func TestDeviceProbeListsNodes(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	for _, name := range []string{"video0", "video1", "null"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	res := NewDeviceProbe(dir).Run()
	if res.Status != StatusOK {
		t.Fatalf("expected ok, got %q: %s", res.Status, res.Message)
	}
	if !strings.Contains(res.Message, "video0") || !strings.Contains(res.Message, "video1") {
		t.Fatalf("expected node names in message, got %q", res.Message)
	}
	if strings.Contains(res.Message, "null") {
		t.Fatalf("non-video node leaked into message: %q", res.Message)
	}
}

func TestDeviceProbeUnreadableDirWarns(t *testing.T) {
	testlog.Start(t)

	res := NewDeviceProbe(filepath.Join(t.TempDir(), "missing")).Run()
	if res.Status != StatusWarn {
		t.Fatalf("expected warn for unreadable dir, got %q", res.Status)
	}
}

func TestRemoteDeviceProbeUsesRunner(t *testing.T) {
	testlog.Start(t)

	runner := &fakeRunner{stdout: "null\nvideo0\n"}
	res := NewRemoteDeviceProbe(runner, "/dev").Run()
	if res.Status != StatusOK {
		t.Fatalf("expected ok, got %q: %s", res.Status, res.Message)
	}
	if !strings.Contains(res.Message, "video0") {
		t.Fatalf("expected video0 in message, got %q", res.Message)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one runner call, got %d", len(runner.calls))
	}
}
