// Package config resolves the immutable run configuration for the
// maintenance tools. Precedence, lowest to highest: built-in defaults,
// config file, CSI_* environment variables, explicit command-line flags.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Environment variable names recognized by the resolver.
const (
	EnvSensorID   = "CSI_SENSOR_ID"
	EnvSensorMode = "CSI_SENSOR_MODE"
	EnvWidth      = "CSI_WIDTH"
	EnvHeight     = "CSI_HEIGHT"
	EnvFPS        = "CSI_FPS"
	EnvFlip       = "CSI_FLIP"
)

// SensorModeUnset marks an absent Argus sensor mode; the pipeline omits
// the sensor-mode property in that case.
const SensorModeUnset = -1

// ErrInvalidArgument is wrapped by every resolver failure. Callers treat
// it as fatal before any probe or external command runs.
var ErrInvalidArgument = errors.New("invalid argument")

// Config is the resolved, immutable run configuration. It is constructed
// once at startup and passed by value to every component.
type Config struct {
	SensorID   int
	SensorMode int
	Width      int
	Height     int
	FPS        int
	Flip       int

	SkipPipeline bool

	DeviceDir  string
	SocketPath string
	DaemonName string

	Remote          string
	IdentityFile    string
	KnownHostsPath  string
	InsecureHostKey bool
}

// Defaults returns the built-in configuration: 1280x720@30 on sensor 0,
// standard Jetson driver paths.
func Defaults() Config {
	return Config{
		SensorID:   0,
		SensorMode: SensorModeUnset,
		Width:      1280,
		Height:     720,
		FPS:        30,
		Flip:       0,
		DeviceDir:  "/dev",
		SocketPath: "/tmp/argus_socket",
		DaemonName: "nvargus-daemon",
	}
}

// LookupEnv is the environment snapshot interface; os.LookupEnv in
// production, a map closure in tests.
type LookupEnv func(key string) (string, bool)

// Overrides carries explicitly-set flag values. A nil field means the
// flag was not given on the command line.
type Overrides struct {
	SensorID   *int
	SensorMode *int
	Width      *int
	Height     *int
	FPS        *int
	Flip       *int

	SkipPipeline *bool

	DeviceDir  *string
	SocketPath *string
}

// Resolve overlays environment variables and explicit flag values onto
// base, then validates the result. A malformed environment value is a
// hard error rather than a silent fallback to the default.
func Resolve(base Config, env LookupEnv, flags Overrides) (Config, error) {
	cfg := base

	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}
	applyOverrides(&cfg, flags)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, env LookupEnv) error {
	if env == nil {
		return nil
	}
	fields := []struct {
		key string
		dst *int
	}{
		{EnvSensorID, &cfg.SensorID},
		{EnvSensorMode, &cfg.SensorMode},
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvFPS, &cfg.FPS},
		{EnvFlip, &cfg.Flip},
	}
	for _, f := range fields {
		raw, ok := env(f.key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidArgument, f.key, raw)
		}
		*f.dst = v
	}
	return nil
}

func applyOverrides(cfg *Config, flags Overrides) {
	if flags.SensorID != nil {
		cfg.SensorID = *flags.SensorID
	}
	if flags.SensorMode != nil {
		cfg.SensorMode = *flags.SensorMode
	}
	if flags.Width != nil {
		cfg.Width = *flags.Width
	}
	if flags.Height != nil {
		cfg.Height = *flags.Height
	}
	if flags.FPS != nil {
		cfg.FPS = *flags.FPS
	}
	if flags.Flip != nil {
		cfg.Flip = *flags.Flip
	}
	if flags.SkipPipeline != nil {
		cfg.SkipPipeline = *flags.SkipPipeline
	}
	if flags.DeviceDir != nil {
		cfg.DeviceDir = *flags.DeviceDir
	}
	if flags.SocketPath != nil {
		cfg.SocketPath = *flags.SocketPath
	}
}

// Validate rejects configurations the pipeline cannot express.
func (c Config) Validate() error {
	if c.SensorID < 0 {
		return fmt.Errorf("%w: sensor-id must be >= 0, got %d", ErrInvalidArgument, c.SensorID)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d is not positive", ErrInvalidArgument, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidArgument, c.FPS)
	}
	if c.Flip < 0 || c.Flip > 7 {
		return fmt.Errorf("%w: flip method must be 0..7, got %d", ErrInvalidArgument, c.Flip)
	}
	if c.SensorMode < SensorModeUnset {
		return fmt.Errorf("%w: sensor-mode must be >= 0, got %d", ErrInvalidArgument, c.SensorMode)
	}
	if strings.TrimSpace(c.DeviceDir) == "" {
		return fmt.Errorf("%w: device dir is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(c.SocketPath) == "" {
		return fmt.Errorf("%w: socket path is required", ErrInvalidArgument)
	}
	return nil
}
