package config

import (
	_ "embed"
)

//go:embed defaults/advent.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
// It matches defaults/advent.yaml and is the last fallback of Load.
func Default() Config {
	return Config{
		Tower: TowerConfig{
			Shapes:          []string{"horizontal", "cross", "angle", "vertical", "square"},
			SignatureWindow: 512,
			CycleDetection:  true,
			MaxSimulated:    5_000_000,
			Part1Target:     2022,
			Part2Target:     1_000_000_000_000,
		},
		Basin: BasinConfig{
			MaxFrontier: 0,
			MaxTicks:    1_000_000,
		},
		Watch: WatchConfig{
			TickRate:      30,
			StepsPerFrame: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
