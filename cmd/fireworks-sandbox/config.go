package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/sim"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Launch     LaunchConfig     `toml:"launch"`
	Display    DisplayConfig    `toml:"display"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	MaxParticles      int     `toml:"max_particles"`
	Seed              int64   `toml:"seed"`
	ShellBatch        int     `toml:"shell_batch"`
	SparkleBatch      int     `toml:"sparkle_batch"`
	RocketLifetimeMin float64 `toml:"rocket_lifetime_min"`
	RocketLifetimeMax float64 `toml:"rocket_lifetime_max"`
}

type LaunchConfig struct {
	Interval time.Duration `toml:"interval"`
}

type DisplayConfig struct {
	TargetFPS int `toml:"target_fps"`

	// WorldHeight is the world-space Y extent mapped onto the screen
	WorldHeight float64 `toml:"world_height"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	// Path of the log file; the terminal owns stdout, so an empty path
	// disables logging entirely
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			MaxParticles:      constant.DefaultMaxParticles,
			Seed:              time.Now().UnixNano(),
			ShellBatch:        constant.ShellBatchSize,
			SparkleBatch:      constant.SparkleBatchSize,
			RocketLifetimeMin: constant.RocketLifetimeMin,
			RocketLifetimeMax: constant.RocketLifetimeMax,
		},
		Launch: LaunchConfig{
			Interval: 600 * time.Millisecond,
		},
		Display: DisplayConfig{
			TargetFPS:   60,
			WorldHeight: 18.0,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// loadConfig layers an optional TOML file over the defaults. A missing file
// at the default path is fine; an explicit path must exist
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) simConfig() sim.Config {
	sc := sim.DefaultConfig()
	sc.MaxParticles = c.Simulation.MaxParticles
	sc.Seed = c.Simulation.Seed
	sc.ShellBatch = c.Simulation.ShellBatch
	sc.SparkleBatch = c.Simulation.SparkleBatch
	sc.RocketLifetimeMin = c.Simulation.RocketLifetimeMin
	sc.RocketLifetimeMax = c.Simulation.RocketLifetimeMax
	return sc
}
