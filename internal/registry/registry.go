// Package registry provides a global registry for puzzle factories.
// Puzzles register themselves in init() functions, allowing the CLI and the
// visualizer to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/advent-sim/internal/config"
	"github.com/vovakirdan/advent-sim/internal/core"
)

// ErrUnknownPuzzle is returned by Create for names that resolve to nothing.
var ErrUnknownPuzzle = errors.New("registry: unknown puzzle")

// Part selects which variant of a puzzle to compute.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// String returns "part 1" or "part 2".
func (p Part) String() string {
	return "part " + strconv.Itoa(int(p))
}

// ParsePart converts "1" or "2" into a Part.
func ParsePart(s string) (Part, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Part1, nil
	case "2":
		return Part2, nil
	}
	return 0, fmt.Errorf("registry: unknown part %q", s)
}

// Sample is the worked example that ships with a puzzle.
type Sample struct {
	Input string
	Part1 int
	Part2 int
}

// Want returns the expected sample answer for a part.
func (s Sample) Want(p Part) int {
	if p == Part2 {
		return s.Part2
	}
	return s.Part1
}

// Puzzle is the interface every registered puzzle implements.
// Puzzles hold pure logic; the CLI handles I/O and the platform handles rendering.
type Puzzle interface {
	// ID returns a unique identifier such as "day17".
	ID() string

	// Slug returns a short alias such as "tower".
	Slug() string

	// Day returns the puzzle day, used for ordering.
	Day() int

	// Title returns a human-readable name for display.
	Title() string

	// Solve parses input and computes the answer for the given part.
	Solve(input string, part Part) (int, error)

	// Sample returns the embedded worked example.
	Sample() Sample

	// Animate parses input and returns a step-by-step run of the given part.
	Animate(input string, part Part) (Animation, error)
}

// Animation is a puzzle computation that can be advanced one step at a time
// and drawn into a screen buffer.
type Animation interface {
	// Step advances the computation by one step. Calling Step after the
	// answer is final is a no-op.
	Step() core.Progress

	// Render draws the current state. The screen is pre-cleared.
	Render(dst *core.Screen)

	// Progress returns the current state without stepping.
	Progress() core.Progress
}

// Info contains metadata about a registered puzzle.
type Info struct {
	ID    string
	Slug  string
	Day   int
	Title string
}

// Factory creates a puzzle configured from cfg.
type Factory func(cfg config.Config) Puzzle

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a puzzle factory to the registry.
// Typically called from a puzzle's init() function.
// Panics if a puzzle with the same ID or slug is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: puzzle %q already registered", id))
	}

	p := f(config.Default())
	for _, info := range infos {
		if info.Slug == p.Slug() {
			panic(fmt.Sprintf("registry: slug %q already registered by %q", p.Slug(), info.ID))
		}
	}

	factories[id] = f
	infos[id] = Info{ID: id, Slug: p.Slug(), Day: p.Day(), Title: p.Title()}
}

// List returns information about all registered puzzles, sorted by day.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Resolve maps a user-supplied name ("day17", "17" or "tower") to a puzzle ID.
func Resolve(name string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := factories[name]; ok {
		return name, true
	}
	for id, info := range infos {
		if info.Slug == name || strconv.Itoa(info.Day) == name {
			return id, true
		}
	}
	return "", false
}

// Create instantiates a puzzle by ID or alias.
// Returns an error if the name does not resolve to a registered puzzle.
func Create(name string, cfg config.Config) (Puzzle, error) {
	id, ok := Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPuzzle, name)
	}

	mu.RLock()
	f := factories[id]
	mu.RUnlock()

	return f(cfg), nil
}

// Exists checks if a name resolves to a registered puzzle.
func Exists(name string) bool {
	_, ok := Resolve(name)
	return ok
}
