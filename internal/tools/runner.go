package tools

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
)

// MissingBinaryExit is the exit code reported when the requested binary
// cannot be found on the target host.
const MissingBinaryExit = 127

// Runner abstracts host command execution so probes and executors can run
// against the local machine or a remote one.
type Runner interface {
	// Run executes a command and captures its output. The returned exit
	// code is 0 on success, the child's code on non-zero exit, and
	// MissingBinaryExit when the binary does not exist.
	Run(name string, args ...string) (stdout, stderr []byte, exitCode int, err error)
	// RunStreaming executes a command with stdout/stderr wired directly to
	// the given writers and returns the child's exit code.
	RunStreaming(stdout, stderr io.Writer, name string, args ...string) (int, error)
}

// LocalRunner executes commands on the local host.
type LocalRunner struct{}

func (LocalRunner) Run(name string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.Command(name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), 0, nil
	}
	return stdout.Bytes(), stderr.Bytes(), exitCodeOf(err), err
}

func (LocalRunner) RunStreaming(stdout, stderr io.Writer, name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	if stdout != nil {
		cmd.Stdout = stdout
	}
	if stderr != nil {
		cmd.Stderr = stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	return exitCodeOf(err), err
}

// IsMissingBinary reports whether err means the binary itself was absent,
// as opposed to the command running and failing.
func IsMissingBinary(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr)
}

func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return MissingBinaryExit
	}
	return 1
}
