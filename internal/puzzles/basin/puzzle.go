package basin

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/advent-sim/internal/config"
	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

// SampleValley is the worked example map.
const SampleValley = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#`

func init() {
	registry.Register("day24", func(cfg config.Config) registry.Puzzle {
		return NewPuzzle(cfg.Basin)
	})
}

// Puzzle adapts the pathfinder to the registry.
type Puzzle struct {
	cfg config.BasinConfig
}

// NewPuzzle creates the day 24 puzzle with the given settings.
func NewPuzzle(cfg config.BasinConfig) *Puzzle {
	return &Puzzle{cfg: cfg}
}

func (p *Puzzle) ID() string    { return "day24" }
func (p *Puzzle) Slug() string  { return "basin" }
func (p *Puzzle) Day() int      { return 24 }
func (p *Puzzle) Title() string { return "Blizzard Basin" }

// Sample returns the worked example.
func (p *Puzzle) Sample() registry.Sample {
	return registry.Sample{Input: SampleValley, Part1: 18, Part2: 54}
}

// Solve returns the minutes for a single crossing (part 1) or for the
// crossing, return and second crossing (part 2).
func (p *Puzzle) Solve(input string, part registry.Part) (int, error) {
	pf, waypoints, err := p.build(input, part)
	if err != nil {
		return 0, err
	}
	trip, err := pf.Trip(waypoints...)
	return trip.Total, err
}

// Animate returns a minute-by-minute run of the part.
func (p *Puzzle) Animate(input string, part registry.Part) (registry.Animation, error) {
	pf, waypoints, err := p.build(input, part)
	if err != nil {
		return nil, err
	}
	a := &animation{pf: pf, waypoints: waypoints}
	a.search = pf.NewSearch(waypoints[0], waypoints[1], 0)
	a.leg = 1
	return a, nil
}

func (p *Puzzle) build(input string, part registry.Part) (*Pathfinder, []core.Point, error) {
	valley, err := Parse(input)
	if err != nil {
		return nil, nil, err
	}
	start, goal := valley.Board.Start(), valley.Board.Goal()

	var waypoints []core.Point
	switch part {
	case registry.Part1:
		waypoints = []core.Point{start, goal}
	case registry.Part2:
		waypoints = []core.Point{start, goal, start, goal}
	default:
		return nil, nil, fmt.Errorf("basin: unsupported %v", part)
	}

	pf := NewPathfinder(valley, Options{
		MaxFrontier: p.cfg.MaxFrontier,
		MaxTicks:    p.cfg.MaxTicks,
		Logger:      log.Default().With("puzzle", p.ID(), "part", int(part)),
	})
	return pf, waypoints, nil
}

// animation runs the legs of a trip one minute at a time.
type animation struct {
	pf        *Pathfinder
	waypoints []core.Point
	search    *Search
	leg       int // index of the current leg's destination in waypoints
	steps     uint64
}

func (a *animation) Step() core.Progress {
	if a.finished() {
		return a.Progress()
	}
	if a.search.Done() {
		a.leg++
		a.search = a.pf.NewSearch(a.waypoints[a.leg-1], a.waypoints[a.leg], a.search.Tick())
	}
	if err := a.search.Step(); err == nil {
		a.steps++
	}
	return a.Progress()
}

func (a *animation) finished() bool {
	if a.search.Err() != nil {
		return true
	}
	return a.search.Done() && a.leg == len(a.waypoints)-1
}

func (a *animation) Render(dst *core.Screen) {
	a.search.render(dst, fmt.Sprintf(" leg %d/%d  minute: %d  frontier: %d",
		a.leg, len(a.waypoints)-1, a.search.Tick(), len(a.search.frontier)))
}

func (a *animation) Progress() core.Progress {
	return core.Progress{
		Step:  a.steps,
		Value: a.search.Tick(),
		Done:  a.finished(),
	}
}
