package core

// RuntimeConfig is passed to animations at creation.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second of the visualizer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Progress is the state an animation reports after each step.
type Progress struct {
	Step  uint64 // Simulation steps taken so far
	Value int    // Current answer candidate (tower height, elapsed ticks)
	Done  bool   // Whether the answer is final
}
