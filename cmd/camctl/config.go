package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/csictl/internal/config"
)

type fileConfig struct {
	SensorID        int    `toml:"sensor_id"`
	SensorMode      int    `toml:"sensor_mode"`
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	FPS             int    `toml:"fps"`
	Flip            int    `toml:"flip"`
	DeviceDir       string `toml:"device_dir"`
	SocketPath      string `toml:"socket_path"`
	Daemon          string `toml:"daemon"`
	Remote          string `toml:"remote"`
	IdentityFile    string `toml:"identity_file"`
	KnownHosts      string `toml:"known_hosts"`
	InsecureHostKey bool   `toml:"insecure_host_key"`
}

// loadFileConfig overlays a toml file onto base. Only keys present in the
// file override; everything else keeps its current value.
func loadFileConfig(path string, base config.Config) (config.Config, error) {
	cfg := base

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.Config{}, fmt.Errorf("load camctl config: %w", err)
	}

	if meta.IsDefined("sensor_id") {
		cfg.SensorID = raw.SensorID
	}
	if meta.IsDefined("sensor_mode") {
		cfg.SensorMode = raw.SensorMode
	}
	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("fps") {
		cfg.FPS = raw.FPS
	}
	if meta.IsDefined("flip") {
		cfg.Flip = raw.Flip
	}
	if meta.IsDefined("device_dir") {
		cfg.DeviceDir = strings.TrimSpace(raw.DeviceDir)
	}
	if meta.IsDefined("socket_path") {
		cfg.SocketPath = strings.TrimSpace(raw.SocketPath)
	}
	if meta.IsDefined("daemon") {
		daemon := strings.TrimSpace(raw.Daemon)
		if daemon != "" {
			cfg.DaemonName = daemon
		}
	}
	if meta.IsDefined("remote") {
		cfg.Remote = strings.TrimSpace(raw.Remote)
	}
	if meta.IsDefined("identity_file") {
		cfg.IdentityFile = strings.TrimSpace(raw.IdentityFile)
	}
	if meta.IsDefined("known_hosts") {
		cfg.KnownHostsPath = strings.TrimSpace(raw.KnownHosts)
	}
	if meta.IsDefined("insecure_host_key") {
		cfg.InsecureHostKey = raw.InsecureHostKey
	}

	return cfg, nil
}
