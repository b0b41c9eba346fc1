// prunectl reclaims Docker disk space in bulk: it stops and removes all
// containers, images, volumes, networks and build cache in a fixed
// order, behind a confirmation gate. Step failures are advisory and the
// sweep always runs to completion.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/danmuck/csictl/internal/logging"
	"github.com/danmuck/csictl/internal/reclaim"
	"github.com/danmuck/csictl/internal/report"
	"github.com/danmuck/csictl/internal/tools"
)

const (
	toolName      = "prunectl"
	runtimeBinary = "docker"
)

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prunectl: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer, runner tools.Runner) (int, error) {
	cmd := newRootCmd(stdin, stdout, runner)
	cmd.SetOut(stdout)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1, err
	}
	return 0, nil
}

func newRootCmd(stdin io.Reader, stdout io.Writer, runner tools.Runner) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "prunectl",
		Short: "Reclaim Docker disk space by deleting ALL runtime resources",
		Long: "prunectl stops every container, then removes containers, images,\n" +
			"build cache, volumes and networks, finishing with a full system\n" +
			"prune. Every step is best-effort: failures are reported and the\n" +
			"sweep continues. Irreversible; gated on confirmation unless --yes.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.ConfigureRuntime()

			r := runner
			if r == nil {
				if _, err := exec.LookPath(runtimeBinary); err != nil {
					return fmt.Errorf("runtime binary %q not found: %w", runtimeBinary, err)
				}
				r = tools.LocalRunner{}
			}
			return sweep(r, stdin, stdout, assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation gate")
	return cmd
}

func sweep(runner tools.Runner, stdin io.Reader, stdout io.Writer, assumeYes bool) error {
	rep := report.New(toolName, stdout)

	if !assumeYes {
		if !reclaim.Confirm(stdin, stdout) {
			rep.Infof("aborted; nothing was removed")
			return nil
		}
	}

	sweeper := reclaim.Sweeper{Runtime: runtimeBinary, Runner: runner}
	results, err := sweeper.Run(reclaim.Plan(), func(res reclaim.StepResult) {
		if res.OK {
			rep.Infof("%s: %s", res.Name, res.Detail)
			return
		}
		rep.Warnf("%s: %s (continuing)", res.Name, res.Detail)
	})
	if err != nil {
		return err
	}

	rep.Infof("sweep complete: %d steps", len(results))
	return nil
}
