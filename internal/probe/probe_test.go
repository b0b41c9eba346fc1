package probe

import (
	"testing"

	"github.com/danmuck/csictl/internal/testutil/testlog"
)

type stubProbe struct {
	name   string
	status Status
}

func (p stubProbe) Name() string { return p.name }
func (p stubProbe) Run() Result {
	return Result{Name: p.name, Status: p.status, Message: "stub"}
}

func TestSequenceAlwaysRunsEveryProbe(t *testing.T) {
	testlog.Start(t)

	mixes := [][]Status{
		{StatusOK, StatusOK, StatusOK},
		{StatusWarn, StatusOK, StatusOK},
		{StatusOK, StatusWarn, StatusOK},
		{StatusWarn, StatusWarn, StatusWarn},
		{StatusOK, StatusWarn, StatusWarn},
	}
	for _, mix := range mixes {
		seq := make(Sequence, 0, len(mix))
		for i, st := range mix {
			seq = append(seq, stubProbe{name: string(rune('a' + i)), status: st})
		}

		var emitted []Result
		results := seq.Run(func(res Result) { emitted = append(emitted, res) })

		if len(results) != len(mix) {
			t.Fatalf("mix %v: expected %d results, got %d", mix, len(mix), len(results))
		}
		if len(emitted) != len(mix) {
			t.Fatalf("mix %v: expected %d emits, got %d", mix, len(mix), len(emitted))
		}
		for i, res := range results {
			if res.Status != mix[i] {
				t.Fatalf("mix %v: result %d status %q", mix, i, res.Status)
			}
		}
	}
}

func TestSequencePreservesOrder(t *testing.T) {
	testlog.Start(t)

	seq := Sequence{
		stubProbe{name: "first", status: StatusWarn},
		stubProbe{name: "second", status: StatusOK},
		stubProbe{name: "third", status: StatusWarn},
	}
	results := seq.Run(nil)
	for i, want := range []string{"first", "second", "third"} {
		if results[i].Name != want {
			t.Fatalf("result %d: expected %q, got %q", i, want, results[i].Name)
		}
	}
	if Warnings(results) != 2 {
		t.Fatalf("expected 2 warnings, got %d", Warnings(results))
	}
}
