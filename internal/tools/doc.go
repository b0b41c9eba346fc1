// Package tools provides host command execution primitives shared by the
// probes and executors. A Runner either execs locally or tunnels over SSH;
// callers never construct exec.Cmd themselves.
package tools
