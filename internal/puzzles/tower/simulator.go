package tower

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/advent-sim/internal/core"
)

var (
	// ErrIterationLimit is returned when more pieces would have to be
	// simulated than Options.MaxSimulated allows.
	ErrIterationLimit = errors.New("tower: simulation limit reached")

	// ErrEmptySequence is returned when the shape or jet sequence is empty.
	ErrEmptySequence = errors.New("tower: shapes and jets must not be empty")
)

var gravity = core.Pt(0, -1)

// Options tunes a Simulator.
type Options struct {
	// SignatureWindow caps the column depths stored in a Signature.
	SignatureWindow int

	// CycleDetection enables the recurrence skip. Disabled, every piece is simulated.
	CycleDetection bool

	// MaxSimulated bounds the pieces actually simulated (0 = unbounded).
	MaxSimulated int

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the settings used by Run.
func DefaultOptions() Options {
	return Options{
		SignatureWindow: 512,
		CycleDetection:  true,
		MaxSimulated:    5_000_000,
	}
}

// Signature is the lossy state fingerprint checked before each spawn.
type Signature struct {
	Shape   int // index of the next shape in its sequence
	Jet     int // index of the next jet in its pattern
	Profile [Width]int
}

type checkpoint struct {
	settled int
	height  int
}

// Cycle describes the recurrence found during a run.
type Cycle struct {
	FirstSeen   int // Pieces settled when the signature was first recorded
	Period      int // Pieces per repeat
	HeightDelta int // Height gained per repeat
	Repeats     int // Whole repeats skipped
}

// Simulator drops pieces into a Tower one step at a time.
// It exclusively owns its Tower.
type Simulator struct {
	shapes []ShapeKind
	jets   []Jet
	opts   Options
	logger *log.Logger

	tower     *Tower
	falling   *Piece
	nextShape int
	nextJet   int
	settled   int // pieces counted toward the target, including skipped ones
	simulated int // pieces actually dropped
	steps     uint64

	seen    map[Signature]checkpoint
	cycle   *Cycle
	skipped bool
	extra   int // height contributed by skipped repeats
}

// New creates a simulator. shapes and jets repeat forever and must not be empty.
func New(shapes []ShapeKind, jets []Jet, opts Options) *Simulator {
	if opts.SignatureWindow <= 0 {
		opts.SignatureWindow = DefaultOptions().SignatureWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		shapes: shapes,
		jets:   jets,
		opts:   opts,
		logger: logger,
		tower:  NewTower(),
		seen:   make(map[Signature]checkpoint),
	}
}

// Run settles pieces until target have been counted and returns the tower
// height, including height extrapolated over skipped repeats.
func Run(shapes []ShapeKind, jets []Jet, target int) (int, error) {
	return New(shapes, jets, DefaultOptions()).Run(target)
}

// Run continues the simulation until target pieces have settled.
func (s *Simulator) Run(target int) (int, error) {
	for s.settled < target {
		if err := s.Advance(target); err != nil {
			return s.Height(), err
		}
	}
	return s.Height(), nil
}

// Advance performs one iteration of Run: a cycle check before a spawn, then
// one Step. It is a no-op once target pieces have settled.
func (s *Simulator) Advance(target int) error {
	if len(s.shapes) == 0 || len(s.jets) == 0 {
		return ErrEmptySequence
	}
	if s.settled >= target {
		return nil
	}

	if s.falling == nil && s.opts.CycleDetection && !s.skipped {
		s.detectCycle(target)
		if s.settled >= target {
			return nil
		}
	}
	if s.falling == nil && s.opts.MaxSimulated > 0 && s.simulated >= s.opts.MaxSimulated {
		return fmt.Errorf("%w after %d pieces", ErrIterationLimit, s.simulated)
	}

	_, err := s.Step()
	return err
}

// Step spawns a piece if none is falling, then applies one jet push and one
// drop. It reports whether the piece came to rest.
func (s *Simulator) Step() (bool, error) {
	if len(s.shapes) == 0 || len(s.jets) == 0 {
		return false, ErrEmptySequence
	}
	if s.falling == nil {
		s.spawn()
	}
	s.steps++

	jet := s.jets[s.nextJet]
	s.nextJet = (s.nextJet + 1) % len(s.jets)
	if pushed := s.falling.moved(jet.Delta()); s.tower.Fits(pushed) {
		*s.falling = pushed
	}

	if dropped := s.falling.moved(gravity); s.tower.Fits(dropped) {
		*s.falling = dropped
		return false, nil
	}

	s.tower.Settle(*s.falling)
	s.falling = nil
	s.settled++
	s.simulated++
	return true, nil
}

// spawn places the next shape above the tower.
func (s *Simulator) spawn() {
	kind := s.shapes[s.nextShape]
	s.nextShape = (s.nextShape + 1) % len(s.shapes)
	s.falling = &Piece{
		Kind:   kind,
		Origin: core.Pt(spawnLeft, s.tower.Height()+spawnGap),
	}
}

// Signature returns the fingerprint of the state before the next spawn.
func (s *Simulator) Signature() Signature {
	return Signature{
		Shape:   s.nextShape,
		Jet:     s.nextJet,
		Profile: s.tower.Profile(s.opts.SignatureWindow),
	}
}

// detectCycle records the current signature or, on a repeat, skips as many
// whole periods as fit before target. The first repeat is trusted as exact.
func (s *Simulator) detectCycle(target int) {
	sig := s.Signature()
	height := s.tower.Height()

	prev, ok := s.seen[sig]
	if !ok {
		s.seen[sig] = checkpoint{settled: s.settled, height: height}
		return
	}

	period := s.settled - prev.settled
	delta := height - prev.height
	repeats := (target - s.settled) / period

	s.cycle = &Cycle{
		FirstSeen:   prev.settled,
		Period:      period,
		HeightDelta: delta,
		Repeats:     repeats,
	}
	s.extra = repeats * delta
	s.settled += repeats * period
	s.skipped = true
	s.seen = nil

	s.logger.Debug("cycle detected",
		"first_seen", prev.settled,
		"period", period,
		"height_delta", delta,
		"repeats", repeats,
		"remaining", target-s.settled,
	)
}

// Height returns the settled tower height plus any extrapolated height.
func (s *Simulator) Height() int {
	return s.tower.Height() + s.extra
}

// Settled returns the number of pieces counted so far, including skipped ones.
func (s *Simulator) Settled() int {
	return s.settled
}

// Cycle returns the recurrence used to skip ahead, or nil if none was found.
func (s *Simulator) Cycle() *Cycle {
	return s.cycle
}

// Falling returns the piece in flight, if any.
func (s *Simulator) Falling() (Piece, bool) {
	if s.falling == nil {
		return Piece{}, false
	}
	return *s.falling, true
}
