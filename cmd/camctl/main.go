// camctl verifies the host preconditions for the Jetson CSI capture
// pipeline and optionally launches a short verification pipeline.
// Probe warnings are advisory; only invalid input aborts a run.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/csictl/internal/config"
	"github.com/danmuck/csictl/internal/logging"
	"github.com/danmuck/csictl/internal/pipeline"
	"github.com/danmuck/csictl/internal/probe"
	"github.com/danmuck/csictl/internal/report"
	"github.com/danmuck/csictl/internal/tools"
)

const toolName = "camctl"

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camctl: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run wires the command and returns the process exit code. A non-nil
// runner overrides runner selection, for tests.
func run(args []string, stdout, stderr io.Writer, env config.LookupEnv, runner tools.Runner) (int, error) {
	cmd, exitCode := newRootCmd(stdout, stderr, env, runner)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1, err
	}
	return *exitCode, nil
}

func newRootCmd(stdout, stderr io.Writer, env config.LookupEnv, runner tools.Runner) (*cobra.Command, *int) {
	exitCode := new(int)

	var (
		configPath      string
		remote          string
		identityFile    string
		knownHosts      string
		insecureHostKey bool
	)
	flags := struct {
		sensorID, sensorMode, width, height, fps, flip int
		skipPipeline                                   bool
		deviceDir, socketPath                          string
	}{}

	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "camctl",
		Short: "Verify Jetson CSI camera preconditions and launch a test pipeline",
		Long: "camctl probes the host state the Argus capture stack depends on\n" +
			"(daemon, device nodes, coordination socket, GStreamer plugin),\n" +
			"reports each result, and then launches a short verification\n" +
			"pipeline unless --skip-pipeline is given. Warnings never stop the\n" +
			"run; the tool's exit code is the pipeline's own.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.ConfigureRuntime()

			base := defaults
			if configPath != "" {
				loaded, err := loadFileConfig(configPath, base)
				if err != nil {
					return err
				}
				base = loaded
			}

			overrides := config.Overrides{}
			set := cmd.Flags()
			if set.Changed("sensor-id") {
				overrides.SensorID = &flags.sensorID
			}
			if set.Changed("sensor-mode") {
				overrides.SensorMode = &flags.sensorMode
			}
			if set.Changed("width") {
				overrides.Width = &flags.width
			}
			if set.Changed("height") {
				overrides.Height = &flags.height
			}
			if set.Changed("fps") {
				overrides.FPS = &flags.fps
			}
			if set.Changed("flip") {
				overrides.Flip = &flags.flip
			}
			if set.Changed("skip-pipeline") {
				overrides.SkipPipeline = &flags.skipPipeline
			}
			if set.Changed("device-dir") {
				overrides.DeviceDir = &flags.deviceDir
			}
			if set.Changed("socket-path") {
				overrides.SocketPath = &flags.socketPath
			}

			cfg, err := config.Resolve(base, env, overrides)
			if err != nil {
				return err
			}
			if set.Changed("remote") {
				cfg.Remote = strings.TrimSpace(remote)
			}
			if set.Changed("identity") {
				cfg.IdentityFile = identityFile
			}
			if set.Changed("known-hosts") {
				cfg.KnownHostsPath = knownHosts
			}
			if set.Changed("insecure-host-key") {
				cfg.InsecureHostKey = insecureHostKey
			}

			r := runner
			if r == nil {
				r, err = runnerFromConfig(cfg)
				if err != nil {
					return err
				}
			}

			*exitCode = check(cfg, r, stdout, stderr)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.sensorID, "sensor-id", defaults.SensorID, "CSI sensor id")
	cmd.Flags().IntVar(&flags.sensorMode, "sensor-mode", defaults.SensorMode, "Argus sensor mode (-1 for unset)")
	cmd.Flags().IntVar(&flags.width, "width", defaults.Width, "capture width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", defaults.Height, "capture height in pixels")
	cmd.Flags().IntVar(&flags.fps, "fps", defaults.FPS, "capture frame rate")
	cmd.Flags().IntVar(&flags.flip, "flip", defaults.Flip, "flip method for the CSI camera (0..7)")
	cmd.Flags().BoolVar(&flags.skipPipeline, "skip-pipeline", false, "report probe results only, do not launch the pipeline")
	cmd.Flags().StringVar(&flags.deviceDir, "device-dir", defaults.DeviceDir, "directory holding video device nodes")
	cmd.Flags().StringVar(&flags.socketPath, "socket-path", defaults.SocketPath, "Argus coordination socket path")
	cmd.Flags().StringVar(&configPath, "config", "", "optional toml config file")
	cmd.Flags().StringVar(&remote, "remote", "", "check a remote host over SSH (user@host[:port])")
	cmd.Flags().StringVar(&identityFile, "identity", "", "SSH private key path for --remote")
	cmd.Flags().StringVar(&knownHosts, "known-hosts", "", "SSH known_hosts path for --remote")
	cmd.Flags().BoolVar(&insecureHostKey, "insecure-host-key", false, "skip SSH host key verification for --remote")

	return cmd, exitCode
}

// check runs the probe sequence and the terminal pipeline action. It
// always completes the probes; only the pipeline's exit code comes back.
func check(cfg config.Config, runner tools.Runner, stdout, stderr io.Writer) int {
	rep := report.New(toolName, stdout)

	results := buildProbes(cfg, runner).Run(func(res probe.Result) {
		if res.Status == probe.StatusWarn {
			rep.Warnf("%s: %s", res.Name, res.Message)
			return
		}
		rep.Infof("%s: %s", res.Name, res.Message)
	})
	if n := probe.Warnings(results); n > 0 {
		rep.Infof("probes complete: %d of %d reported warnings", n, len(results))
	} else {
		rep.Infof("probes complete: all %d ok", len(results))
	}

	argv := pipeline.Build(cfg)
	rep.Infof("pipeline: %s", strings.Join(argv, " "))

	if cfg.SkipPipeline {
		rep.Infof("pipeline launch skipped")
		return 0
	}

	exit, err := pipeline.Launch(runner, argv, stdout, stderr)
	if err != nil {
		rep.Warnf("pipeline exited %d: %v", exit, err)
		return exit
	}
	rep.Infof("pipeline completed")
	return 0
}

func buildProbes(cfg config.Config, runner tools.Runner) probe.Sequence {
	deviceProbe := probe.NewDeviceProbe(cfg.DeviceDir)
	socketProbe := probe.NewSocketProbe(cfg.SocketPath, cfg.DaemonName)
	if cfg.Remote != "" {
		deviceProbe = probe.NewRemoteDeviceProbe(runner, cfg.DeviceDir)
		socketProbe = probe.NewRemoteSocketProbe(runner, cfg.SocketPath, cfg.DaemonName)
	}
	return probe.Sequence{
		probe.DaemonProbe{Runner: runner, Daemon: cfg.DaemonName},
		deviceProbe,
		socketProbe,
		probe.PluginProbe{Runner: runner, Plugin: "nvarguscamerasrc"},
	}
}

func runnerFromConfig(cfg config.Config) (tools.Runner, error) {
	if cfg.Remote == "" {
		return tools.LocalRunner{}, nil
	}

	user, host, ok := strings.Cut(cfg.Remote, "@")
	if !ok || user == "" || host == "" {
		return nil, fmt.Errorf("%w: --remote must be user@host[:port], got %q",
			config.ErrInvalidArgument, cfg.Remote)
	}
	return tools.SSHRunner{
		Host:                        host,
		User:                        user,
		KeyPath:                     cfg.IdentityFile,
		KnownHostsPath:              cfg.KnownHostsPath,
		InsecureSkipHostKeyChecking: cfg.InsecureHostKey,
	}, nil
}
