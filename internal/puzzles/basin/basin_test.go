package basin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/advent-sim/internal/config"
	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

const tinyValley = `#.#####
#.....#
#>....#
#.....#
#...v.#
#.....#
#####.#`

const calmValley = `#.####
#....#
#....#
#....#
####.#`

func mustParse(t *testing.T, text string) *Valley {
	t.Helper()
	v, err := Parse(text)
	require.NoError(t, err)
	return v
}

func TestParse(t *testing.T) {
	v := mustParse(t, SampleValley+"\n")
	b := v.Board

	assert.Equal(t, 8, b.W())
	assert.Equal(t, 6, b.H())
	assert.Equal(t, core.Pt(1, 0), b.Start())
	assert.Equal(t, core.Pt(6, 5), b.Goal())
	assert.Equal(t, core.NewRect(1, 1, 6, 4), b.Interior())
	assert.Len(t, v.Blizzards, 19)
	assert.Equal(t, Blizzard{Pos: core.Pt(1, 1), Dir: core.DirRight}, v.Blizzards[0])

	assert.Equal(t, Wall, b.Cell(core.Pt(0, 0)))
	assert.Equal(t, Wall, b.Cell(core.Pt(-1, 3)))
	assert.True(t, b.Walkable(core.Pt(1, 1)))
	assert.False(t, b.Walkable(core.Pt(1, -1)))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", core.ErrEmptyGrid},
		{"ragged", "#.#\n#..\n#.##", core.ErrRagged},
		{"bad cell", "#.#\n#x#\n#.#", ErrBadCell},
		{"too small", "#.\n.#", ErrTooSmall},
		{"no start", "###\n#.#\n#.#", ErrNoStart},
		{"two starts", "#..#\n#..#\n##.#", ErrNoStart},
		{"no goal", "#.#\n#.#\n###", ErrNoGoal},
		{"blizzard in gap", "#>#\n#.#\n#.#", ErrBlizzardOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBlizzardWraps(t *testing.T) {
	v := mustParse(t, tinyValley)
	b := v.Board
	right, down := v.Blizzards[0], v.Blizzards[1]
	require.Equal(t, core.DirRight, right.Dir)
	require.Equal(t, core.DirDown, down.Dir)

	tests := []struct {
		tick        int
		right, down core.Point
	}{
		{0, core.Pt(1, 2), core.Pt(4, 4)},
		{1, core.Pt(2, 2), core.Pt(4, 5)},
		{2, core.Pt(3, 2), core.Pt(4, 1)},
		{3, core.Pt(4, 2), core.Pt(4, 2)},
		{4, core.Pt(5, 2), core.Pt(4, 3)},
		{5, core.Pt(1, 2), core.Pt(4, 4)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.right, right.At(b, tt.tick), "right at %d", tt.tick)
		assert.Equal(t, tt.down, down.At(b, tt.tick), "down at %d", tt.tick)
	}

	tl := NewTimeline(b, v.Blizzards)
	assert.Equal(t, 5, tl.Period())
	assert.Equal(t, 2, tl.Count(3, core.Pt(4, 2)))
	assert.True(t, tl.Occupied(3, core.Pt(4, 2)))
	assert.False(t, tl.Occupied(3, core.Pt(1, 2)))
}

func TestClosedFormMatchesIncremental(t *testing.T) {
	v := mustParse(t, SampleValley)
	b := v.Board
	tl := NewTimeline(b, v.Blizzards)
	require.Equal(t, 12, tl.Period())

	current := v.Blizzards
	for tick := range 3 * tl.Period() {
		for i, bz := range v.Blizzards {
			require.Equal(t, current[i].Pos, bz.At(b, tick), "blizzard %d at %d", i, tick)
			require.True(t, b.Interior().Contains(current[i].Pos))
			require.True(t, tl.Occupied(tick, current[i].Pos))
		}
		current = Advance(b, current)
	}
	assert.Equal(t, tl.Blizzards(0), tl.Blizzards(tl.Period()))
}

func TestSample(t *testing.T) {
	v := mustParse(t, SampleValley)

	got, err := ShortestTime(v)
	require.NoError(t, err)
	assert.Equal(t, 18, got)

	got, err = RoundTrip(v)
	require.NoError(t, err)
	assert.Equal(t, 54, got)
}

func TestTripLegs(t *testing.T) {
	v := mustParse(t, SampleValley)
	b := v.Board
	pf := NewPathfinder(v, DefaultOptions())

	trip, err := pf.Trip(b.Start(), b.Goal(), b.Start(), b.Goal())
	require.NoError(t, err)
	require.Len(t, trip.Legs, 3)

	ticks := make([]int, len(trip.Legs))
	for i, leg := range trip.Legs {
		ticks[i] = leg.Ticks
	}
	assert.Equal(t, []int{18, 23, 13}, ticks)
	assert.Equal(t, []int{0, 18, 41}, []int{trip.Legs[0].Start, trip.Legs[1].Start, trip.Legs[2].Start})
	assert.Equal(t, 54, trip.Total)

	// Each leg on a fresh pathfinder, started at the previous leg's end.
	tick := 0
	for _, leg := range trip.Legs {
		n, err := NewPathfinder(v, DefaultOptions()).ShortestTime(leg.From, leg.To, tick)
		require.NoError(t, err)
		assert.Equal(t, leg.Ticks, n)
		tick += n
	}
}

func TestCalmValleyIsManhattan(t *testing.T) {
	v := mustParse(t, calmValley)
	b := v.Board
	pf := NewPathfinder(v, DefaultOptions())

	got, err := pf.ShortestTime(b.Start(), b.Goal(), 0)
	require.NoError(t, err)
	assert.Equal(t, b.Start().Manhattan(b.Goal()), got)

	for p := range b.cells.Points() {
		if !b.Walkable(p) {
			continue
		}
		got, err := pf.ShortestTime(b.Start(), p, 7)
		require.NoError(t, err)
		assert.Equal(t, b.Start().Manhattan(p), got, "to %v", p)
	}
}

func TestManhattanLowerBound(t *testing.T) {
	v := mustParse(t, SampleValley)
	b := v.Board
	pf := NewPathfinder(v, DefaultOptions())

	for p := range b.cells.Points() {
		if !b.Interior().Contains(p) {
			continue
		}
		got, err := pf.ShortestTime(b.Start(), p, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, b.Start().Manhattan(p), "to %v", p)
	}
}

func TestSameStartAndGoal(t *testing.T) {
	v := mustParse(t, SampleValley)
	got, err := NewPathfinder(v, DefaultOptions()).ShortestTime(v.Board.Start(), v.Board.Start(), 5)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestFrontierDeduplicated(t *testing.T) {
	v := mustParse(t, calmValley)
	s := NewPathfinder(v, DefaultOptions()).NewSearch(v.Board.Start(), v.Board.Goal(), 0)

	for range 4 {
		require.NoError(t, s.Step())
		seen := make(map[core.Point]bool)
		for _, p := range s.Frontier() {
			require.False(t, seen[p], "duplicate %v at %d", p, s.Tick())
			seen[p] = true
		}
	}
	assert.Equal(t, 4, s.Elapsed())
	assert.False(t, s.Done())
}

func TestPruning(t *testing.T) {
	v := mustParse(t, SampleValley)
	b := v.Board

	wide := NewPathfinder(v, Options{MaxFrontier: 1000, MaxTicks: 1000})
	got, err := wide.ShortestTime(b.Start(), b.Goal(), 0)
	require.NoError(t, err)
	assert.Equal(t, 18, got)

	narrow := NewPathfinder(v, Options{MaxFrontier: 1, MaxTicks: 1000})
	got, err = narrow.ShortestTime(b.Start(), b.Goal(), 0)
	if err != nil {
		assert.ErrorIs(t, err, ErrUnreachable)
	} else {
		assert.GreaterOrEqual(t, got, 18)
	}

	s := narrow.NewSearch(b.Start(), b.Goal(), 0)
	for range 5 {
		if s.Step() != nil || s.Done() {
			break
		}
		assert.LessOrEqual(t, len(s.Frontier()), 1)
	}
}

func TestTickBudget(t *testing.T) {
	v := mustParse(t, SampleValley)
	b := v.Board
	pf := NewPathfinder(v, Options{MaxTicks: 10})

	got, err := pf.ShortestTime(b.Start(), b.Goal(), 0)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, 10, got)

	_, err = pf.Trip(b.Start(), b.Goal())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestBlockedValley(t *testing.T) {
	// The only interior cell is swept by a blizzard that never leaves it.
	v := mustParse(t, "#.#\n#>#\n#.#")
	got, err := NewPathfinder(v, Options{MaxTicks: 50}).ShortestTime(v.Board.Start(), v.Board.Goal(), 0)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, 50, got)
}

func TestRender(t *testing.T) {
	v := mustParse(t, tinyValley)
	pf := NewPathfinder(v, DefaultOptions())
	s := pf.NewSearch(v.Board.Start(), v.Board.Goal(), 0)
	for range 3 {
		require.NoError(t, s.Step())
	}

	screen := core.NewScreen(20, 12)
	s.Render(screen)
	out := screen.String()

	assert.Contains(t, screen.Row(0), "minute: 3")
	assert.Contains(t, out, "2", "stacked blizzards")
	assert.Contains(t, out, "E")
	assert.Contains(t, out, "G")
	assert.Equal(t, 1, strings.Count(out, "G"))
	assert.Equal(t, '┌', screen.Get(5, 2), "valley framed")
	assert.Equal(t, '┘', screen.Get(13, 10))

	wide := core.NewScreen(60, 12)
	s.Render(wide)
	assert.Contains(t, wide.Row(0), "Blizzard Basin  minute: 3  frontier:")
}

func TestPuzzle(t *testing.T) {
	p := NewPuzzle(config.Default().Basin)
	sample := p.Sample()

	for _, part := range []registry.Part{registry.Part1, registry.Part2} {
		got, err := p.Solve(sample.Input, part)
		require.NoError(t, err)
		assert.Equal(t, sample.Want(part), got, part.String())
	}

	_, err := p.Solve("#x#", registry.Part1)
	assert.ErrorIs(t, err, ErrBadCell)

	_, err = p.Solve(sample.Input, registry.Part(3))
	assert.Error(t, err)
}

func TestAnimationReachesAnswer(t *testing.T) {
	p := NewPuzzle(config.Default().Basin)
	anim, err := p.Animate(SampleValley, registry.Part2)
	require.NoError(t, err)

	var prog core.Progress
	for range 1000 {
		if prog = anim.Step(); prog.Done {
			break
		}
	}
	require.True(t, prog.Done)
	assert.Equal(t, 54, prog.Value)
	assert.Equal(t, uint64(54), prog.Step)

	screen := core.NewScreen(40, 12)
	anim.Render(screen)
	assert.Contains(t, screen.Row(0), "leg 3/3  minute: 54")
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("day24"))
	p, err := registry.Create("basin", config.Default())
	require.NoError(t, err)
	assert.Equal(t, "Blizzard Basin", p.Title())
}
