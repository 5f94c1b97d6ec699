// Package config provides YAML-based configuration loading for the solvers
// and the visualizer.
package config

// Config is the complete configuration of the toolbox.
type Config struct {
	Tower TowerConfig `yaml:"tower"`
	Basin BasinConfig `yaml:"basin"`
	Watch WatchConfig `yaml:"watch"`
	Log   LogConfig   `yaml:"log"`
}

// TowerConfig tunes the falling-shape simulator.
type TowerConfig struct {
	Shapes          []string `yaml:"shapes"`           // Spawn order by shape name
	SignatureWindow int      `yaml:"signature_window"` // Cap on column depths in the cycle fingerprint
	CycleDetection  bool     `yaml:"cycle_detection"`  // false forces brute-force simulation
	MaxSimulated    int      `yaml:"max_simulated"`    // Pieces actually simulated before giving up (0 = unbounded)
	Part1Target     int      `yaml:"part1_target"`
	Part2Target     int      `yaml:"part2_target"`
}

// BasinConfig tunes the blizzard pathfinder.
type BasinConfig struct {
	MaxFrontier int `yaml:"max_frontier"` // Frontier size cap per tick (0 = unbounded)
	MaxTicks    int `yaml:"max_ticks"`    // Tick budget per leg
}

// WatchConfig controls the visualizer.
type WatchConfig struct {
	TickRate      int `yaml:"tick_rate"`       // Frames per second
	StepsPerFrame int `yaml:"steps_per_frame"` // Simulation steps per frame at start
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
