package basin

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/advent-sim/internal/core"
)

// ErrUnreachable is returned when a leg cannot reach its goal: every
// position was overrun by blizzards, or the tick budget ran out.
var ErrUnreachable = errors.New("basin: goal unreachable")

// Options tunes a Pathfinder.
type Options struct {
	// MaxFrontier keeps at most this many positions per tick, closest to the
	// goal first. Zero keeps every position and guarantees the optimum.
	MaxFrontier int

	// MaxTicks bounds the duration of a single leg (0 = unbounded).
	MaxTicks int

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the settings used by the package helpers.
func DefaultOptions() Options {
	return Options{MaxTicks: 1_000_000}
}

// Pathfinder searches a valley. Blizzard occupancy is shared across every
// search it runs.
type Pathfinder struct {
	board    *Board
	timeline *Timeline
	opts     Options
	logger   *log.Logger
}

// NewPathfinder creates a pathfinder over v.
func NewPathfinder(v *Valley, opts Options) *Pathfinder {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pathfinder{
		board:    v.Board,
		timeline: NewTimeline(v.Board, v.Blizzards),
		opts:     opts,
		logger:   logger,
	}
}

// Board returns the valley layout.
func (pf *Pathfinder) Board() *Board { return pf.board }

// Timeline returns the shared blizzard timeline.
func (pf *Pathfinder) Timeline() *Timeline { return pf.timeline }

// ShortestTime returns the minutes needed to walk from start to goal when the
// walk begins at absolute minute startTick.
func (pf *Pathfinder) ShortestTime(start, goal core.Point, startTick int) (int, error) {
	s := pf.NewSearch(start, goal, startTick)
	for !s.Done() {
		if err := s.Step(); err != nil {
			return s.Elapsed(), err
		}
	}
	return s.Elapsed(), nil
}

// Leg is one segment of a Trip.
type Leg struct {
	From  core.Point
	To    core.Point
	Start int // absolute minute the leg began
	Ticks int // minutes the leg took
}

// Trip is the result of walking through several waypoints in order.
type Trip struct {
	Legs  []Leg
	Total int
}

// Trip walks the waypoints in order. Each leg starts at the minute the
// previous one ended; blizzards keep moving throughout.
func (pf *Pathfinder) Trip(waypoints ...core.Point) (Trip, error) {
	var trip Trip
	tick := 0
	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		n, err := pf.ShortestTime(from, to, tick)
		if err != nil {
			return trip, fmt.Errorf("leg %d %v->%v: %w", i, from, to, err)
		}
		trip.Legs = append(trip.Legs, Leg{From: from, To: to, Start: tick, Ticks: n})
		tick += n
		pf.logger.Debug("leg done", "leg", i, "ticks", n, "at", tick)
	}
	trip.Total = tick
	return trip, nil
}

// ShortestTime returns the fastest crossing from the valley's start to its goal.
func ShortestTime(v *Valley) (int, error) {
	b := v.Board
	return NewPathfinder(v, DefaultOptions()).ShortestTime(b.Start(), b.Goal(), 0)
}

// RoundTrip returns the minutes to cross, go back for the snacks, and cross again.
func RoundTrip(v *Valley) (int, error) {
	b := v.Board
	trip, err := NewPathfinder(v, DefaultOptions()).Trip(b.Start(), b.Goal(), b.Start(), b.Goal())
	return trip.Total, err
}

// Search expands the set of positions reachable at each minute of one leg.
// It is driven by ShortestTime and, one Step at a time, by the visualizer.
type Search struct {
	pf        *Pathfinder
	start     core.Point
	goal      core.Point
	startTick int
	tick      int

	frontier []core.Point
	seen     *core.Grid[int] // generation that last queued a position
	gen      int
	done     bool
	err      error
}

// NewSearch starts a leg from start to goal at absolute minute startTick.
func (pf *Pathfinder) NewSearch(start, goal core.Point, startTick int) *Search {
	return &Search{
		pf:        pf,
		start:     start,
		goal:      goal,
		startTick: startTick,
		tick:      startTick,
		frontier:  []core.Point{start},
		seen:      core.NewGrid[int](pf.board.W(), pf.board.H()),
		done:      start == goal,
	}
}

// Step advances the search by one minute. Each position may move in one of
// the four directions or wait; a destination must be walkable and free of
// blizzards at the new minute.
func (s *Search) Step() error {
	if s.done || s.err != nil {
		return s.err
	}
	if limit := s.pf.opts.MaxTicks; limit > 0 && s.Elapsed() >= limit {
		s.err = fmt.Errorf("%w: no path within %d ticks", ErrUnreachable, limit)
		return s.err
	}

	next := s.tick + 1
	s.gen++
	board, timeline := s.pf.board, s.pf.timeline
	expanded := make([]core.Point, 0, 2*len(s.frontier))

	for _, p := range s.frontier {
		for _, q := range actions(p) {
			if !board.Walkable(q) || timeline.Occupied(next, q) {
				continue
			}
			if q == s.goal {
				s.tick = next
				s.frontier = []core.Point{q}
				s.done = true
				return nil
			}
			if s.seen.At(q) == s.gen {
				continue
			}
			s.seen.Set(q, s.gen)
			expanded = append(expanded, q)
		}
	}

	s.tick = next
	if len(expanded) == 0 {
		s.frontier = nil
		s.err = fmt.Errorf("%w: frontier empty at tick %d", ErrUnreachable, next)
		return s.err
	}
	if limit := s.pf.opts.MaxFrontier; limit > 0 && len(expanded) > limit {
		s.prune(expanded)
		expanded = expanded[:limit]
	}
	s.frontier = expanded
	return nil
}

// actions returns the four moves from p followed by waiting in place.
func actions(p core.Point) [5]core.Point {
	n := p.Neighbors()
	return [5]core.Point{n[0], n[1], n[2], n[3], p}
}

// prune orders the frontier by distance to the goal, ties broken by row then
// column so pruning is deterministic.
func (s *Search) prune(frontier []core.Point) {
	slices.SortFunc(frontier, func(a, b core.Point) int {
		if d := a.Manhattan(s.goal) - b.Manhattan(s.goal); d != 0 {
			return d
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

// Done reports whether the goal has been reached.
func (s *Search) Done() bool { return s.done }

// Err returns the error that stopped the search, if any.
func (s *Search) Err() error { return s.err }

// Tick returns the current absolute minute.
func (s *Search) Tick() int { return s.tick }

// Elapsed returns the minutes spent on this leg.
func (s *Search) Elapsed() int { return s.tick - s.startTick }

// Goal returns the leg's destination.
func (s *Search) Goal() core.Point { return s.goal }

// Frontier returns a copy of the positions reachable at the current minute.
func (s *Search) Frontier() []core.Point {
	return slices.Clone(s.frontier)
}
