package reclaim

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm blocks until the operator acknowledges the sweep with one line
// on in. There is no timeout.
//
// A line starting with "n" or equal to "q"/"quit" aborts; any other line,
// including a bare Enter, proceeds. End-of-input with no line at all also
// aborts: an absent operator must never unlock deletion.
func Confirm(in io.Reader, prompt io.Writer) bool {
	fmt.Fprint(prompt, "This will stop and DELETE all containers, images, volumes, networks and build cache. Continue? [Y/n] ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	if strings.HasPrefix(answer, "n") || answer == "q" || answer == "quit" {
		return false
	}
	return true
}
