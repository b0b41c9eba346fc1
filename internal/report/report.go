// Package report writes the operator-facing progress lines. The
// "[tool]" and "[tool][warn]" prefixes are an external contract: scripts
// and log scrapers match on them, so they must not change shape.
package report

import (
	"fmt"
	"io"
)

// Reporter prefixes every line with the owning tool's name.
type Reporter struct {
	tool string
	out  io.Writer
}

// New creates a reporter for the named tool writing to out.
func New(tool string, out io.Writer) *Reporter {
	return &Reporter{tool: tool, out: out}
}

// Infof writes one "[tool] ..." progress line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, "[%s] %s\n", r.tool, fmt.Sprintf(format, args...))
}

// Warnf writes one "[tool][warn] ..." advisory line.
func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.out, "[%s][warn] %s\n", r.tool, fmt.Sprintf(format, args...))
}
