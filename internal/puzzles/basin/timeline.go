package basin

import "github.com/vovakirdan/advent-sim/internal/core"

// Timeline answers "which cells are covered at minute t" for any t.
// Blizzard states repeat every lcm(interior width, interior height) minutes,
// so at most one occupancy frame per phase is built, lazily and in order.
type Timeline struct {
	board   *Board
	initial []Blizzard
	current []Blizzard // blizzards at phase len(frames)-1
	frames  []*core.Grid[uint8]
	period  int
}

// NewTimeline starts a timeline from the blizzards at minute 0.
func NewTimeline(board *Board, blizzards []Blizzard) *Timeline {
	in := board.Interior()
	t := &Timeline{
		board:   board,
		initial: append([]Blizzard(nil), blizzards...),
		current: append([]Blizzard(nil), blizzards...),
		period:  core.LCM(in.W, in.H),
	}
	t.frames = append(t.frames, t.occupancy(t.current))
	return t
}

// Period returns the number of minutes after which the blizzards repeat.
func (t *Timeline) Period() int {
	return t.period
}

// Occupied reports whether any blizzard covers p at minute tick.
func (t *Timeline) Occupied(tick int, p core.Point) bool {
	return t.frame(tick).At(p) > 0
}

// Count returns how many blizzards cover p at minute tick.
func (t *Timeline) Count(tick int, p core.Point) int {
	return int(t.frame(tick).At(p))
}

// Blizzards returns the blizzards at minute tick.
func (t *Timeline) Blizzards(tick int) []Blizzard {
	out := make([]Blizzard, len(t.initial))
	for i, bz := range t.initial {
		out[i] = Blizzard{Pos: bz.At(t.board, tick), Dir: bz.Dir}
	}
	return out
}

// frame returns the occupancy grid of the phase of tick, extending the
// memoized frames incrementally as needed.
func (t *Timeline) frame(tick int) *core.Grid[uint8] {
	phase := core.Mod(tick, t.period)
	for len(t.frames) <= phase {
		t.current = Advance(t.board, t.current)
		t.frames = append(t.frames, t.occupancy(t.current))
	}
	return t.frames[phase]
}

func (t *Timeline) occupancy(blizzards []Blizzard) *core.Grid[uint8] {
	g := core.NewGrid[uint8](t.board.W(), t.board.H())
	for _, bz := range blizzards {
		g.Set(bz.Pos, g.At(bz.Pos)+1)
	}
	return g
}
