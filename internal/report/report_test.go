package report

import (
	"bytes"
	"testing"

	"github.com/danmuck/csictl/internal/testutil/testlog"
)

func TestPrefixFormat(t *testing.T) {
	testlog.Start(t)

	var buf bytes.Buffer
	rep := New("camctl", &buf)
	rep.Infof("probes complete: all %d ok", 4)
	rep.Warnf("argus-socket: %s missing", "/tmp/argus_socket")

	want := "[camctl] probes complete: all 4 ok\n" +
		"[camctl][warn] argus-socket: /tmp/argus_socket missing\n"
	if buf.String() != want {
		t.Fatalf("prefix contract broken:\n got %q\nwant %q", buf.String(), want)
	}
}
