package tower

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/advent-sim/internal/config"
	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

// SampleJets is the worked example jet pattern.
const SampleJets = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"

func init() {
	registry.Register("day17", func(cfg config.Config) registry.Puzzle {
		return NewPuzzle(cfg.Tower)
	})
}

// Puzzle adapts the simulator to the registry.
type Puzzle struct {
	cfg config.TowerConfig
}

// NewPuzzle creates the day 17 puzzle with the given settings.
func NewPuzzle(cfg config.TowerConfig) *Puzzle {
	return &Puzzle{cfg: cfg}
}

func (p *Puzzle) ID() string    { return "day17" }
func (p *Puzzle) Slug() string  { return "tower" }
func (p *Puzzle) Day() int      { return 17 }
func (p *Puzzle) Title() string { return "Pyroclastic Flow" }

// Sample returns the worked example.
func (p *Puzzle) Sample() registry.Sample {
	return registry.Sample{Input: SampleJets, Part1: 3068, Part2: 1514285714288}
}

// Solve returns the tower height after the part's target piece count.
func (p *Puzzle) Solve(input string, part registry.Part) (int, error) {
	sim, target, err := p.build(input, part)
	if err != nil {
		return 0, err
	}
	return sim.Run(target)
}

// Animate returns a step-by-step run of the part.
func (p *Puzzle) Animate(input string, part registry.Part) (registry.Animation, error) {
	sim, target, err := p.build(input, part)
	if err != nil {
		return nil, err
	}
	return &animation{sim: sim, target: target}, nil
}

func (p *Puzzle) build(input string, part registry.Part) (*Simulator, int, error) {
	jets, err := ParseJets(input)
	if err != nil {
		return nil, 0, err
	}
	shapes, err := ParseShapes(p.cfg.Shapes)
	if err != nil {
		return nil, 0, err
	}

	var target int
	switch part {
	case registry.Part1:
		target = p.cfg.Part1Target
	case registry.Part2:
		target = p.cfg.Part2Target
	default:
		return nil, 0, fmt.Errorf("tower: unsupported %v", part)
	}

	sim := New(shapes, jets, Options{
		SignatureWindow: p.cfg.SignatureWindow,
		CycleDetection:  p.cfg.CycleDetection,
		MaxSimulated:    p.cfg.MaxSimulated,
		Logger:          log.Default().With("puzzle", p.ID(), "part", int(part)),
	})
	return sim, target, nil
}

// animation drives a Simulator toward its target for the visualizer.
type animation struct {
	sim    *Simulator
	target int
	err    error
}

func (a *animation) Step() core.Progress {
	if a.err == nil {
		a.err = a.sim.Advance(a.target)
	}
	return a.Progress()
}

func (a *animation) Render(dst *core.Screen) {
	a.sim.Render(dst)
	if a.err != nil {
		dst.DrawTextColored(1, dst.Height()-1, a.err.Error(), core.ColorRed)
	}
}

func (a *animation) Progress() core.Progress {
	return core.Progress{
		Step:  a.sim.steps,
		Value: a.sim.Height(),
		Done:  a.err != nil || a.sim.Settled() >= a.target,
	}
}
