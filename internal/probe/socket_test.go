package probe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/csictl/internal/testutil/testlog"
)

func TestSocketProbeMissingWarns(t *testing.T) {
	testlog.Start(t)

	path := filepath.Join(t.TempDir(), "argus_socket")
	res := NewSocketProbe(path, "nvargus-daemon").Run()
	if res.Status != StatusWarn {
		t.Fatalf("expected warn, got %q", res.Status)
	}
	if !strings.Contains(res.Message, "nvargus-daemon") {
		t.Fatalf("expected remediation hint, got %q", res.Message)
	}
}

func TestSocketProbePresentReportsOwnership(t *testing.T) {
	testlog.Start(t)

	path := filepath.Join(t.TempDir(), "argus_socket")
	if err := os.WriteFile(path, nil, 0o660); err != nil {
		t.Fatalf("write socket stand-in: %v", err)
	}

	res := NewSocketProbe(path, "nvargus-daemon").Run()
	if res.Status != StatusOK {
		t.Fatalf("expected ok, got %q: %s", res.Status, res.Message)
	}
	if !strings.Contains(res.Message, "owner=") || !strings.Contains(res.Message, "mode=") {
		t.Fatalf("expected ownership detail, got %q", res.Message)
	}
}

func TestRemoteSocketProbe(t *testing.T) {
	testlog.Start(t)

	present := NewRemoteSocketProbe(&fakeRunner{stdout: "srwxrwx--- 1 root video 0 /tmp/argus_socket\n"},
		"/tmp/argus_socket", "nvargus-daemon").Run()
	if present.Status != StatusOK {
		t.Fatalf("expected ok, got %q: %s", present.Status, present.Message)
	}

	missing := NewRemoteSocketProbe(&fakeRunner{exit: 2}, "/tmp/argus_socket", "nvargus-daemon").Run()
	if missing.Status != StatusWarn {
		t.Fatalf("expected warn, got %q", missing.Status)
	}
}
