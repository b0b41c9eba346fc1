package reclaim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danmuck/csictl/internal/testutil/testlog"
)

func TestConfirm(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name    string
		input   string
		proceed bool
	}{
		{"immediate end of input aborts", "", false},
		{"bare enter proceeds", "\n", true},
		{"yes proceeds", "y\n", true},
		{"anything else proceeds", "sure\n", true},
		{"n aborts", "n\n", false},
		{"no aborts", "no\n", false},
		{"uppercase n aborts", "N\n", false},
		{"q aborts", "q\n", false},
		{"quit aborts", "quit\n", false},
	}
	for _, tc := range cases {
		var prompt bytes.Buffer
		got := Confirm(strings.NewReader(tc.input), &prompt)
		if got != tc.proceed {
			t.Fatalf("%s: Confirm(%q) = %v, want %v", tc.name, tc.input, got, tc.proceed)
		}
		if !strings.Contains(prompt.String(), "Continue?") {
			t.Fatalf("%s: prompt not written: %q", tc.name, prompt.String())
		}
	}
}
