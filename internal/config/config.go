// Package config loads the engine configuration file and constructs the
// process logger. Missing file sections fall back to defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Frame   FrameConfig   `toml:"frame"`
	Scene   SceneConfig   `toml:"scene"`
	Camera  CameraConfig  `toml:"camera"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type FrameConfig struct {
	TargetFPS int `toml:"target_fps"`
}

type SceneConfig struct {
	Culling string `toml:"culling"` // "none" or "frustum"
}

type CameraConfig struct {
	FovDeg float32 `toml:"fov_deg"`
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "kine",
		},
		Frame: FrameConfig{
			TargetFPS: 60,
		},
		Scene: SceneConfig{
			Culling: "frustum",
		},
		Camera: CameraConfig{
			FovDeg: 60,
			Near:   0.1,
			Far:    1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
