package tower

import "github.com/vovakirdan/advent-sim/internal/core"

// Tower is the set of settled rock cells plus a per-column height cache.
// Every occupied cell lies within [0, Width) and below its column height;
// Settle keeps the cache consistent with the set.
type Tower struct {
	occupied map[core.Point]struct{}
	heights  [Width]int // rows filled per column (top cell Y + 1), 0 when empty
}

// NewTower returns an empty chamber.
func NewTower() *Tower {
	return &Tower{occupied: make(map[core.Point]struct{})}
}

// Height returns the height of the tallest column.
func (t *Tower) Height() int {
	top := 0
	for _, h := range t.heights {
		top = max(top, h)
	}
	return top
}

// Occupied reports whether a settled cell is at c.
func (t *Tower) Occupied(c core.Point) bool {
	_, ok := t.occupied[c]
	return ok
}

// Len returns the number of settled cells.
func (t *Tower) Len() int {
	return len(t.occupied)
}

// Blocked reports whether c is a wall, the floor or a settled cell.
// Bounds are checked before the set lookup so no position below the floor
// or beside the walls is ever considered free.
func (t *Tower) Blocked(c core.Point) bool {
	if c.X < 0 || c.X >= Width || c.Y < 0 {
		return true
	}
	return t.Occupied(c)
}

// Fits reports whether every cell of p is free.
func (t *Tower) Fits(p Piece) bool {
	for _, o := range p.Kind.Cells() {
		if t.Blocked(p.Origin.Add(o)) {
			return false
		}
	}
	return true
}

// Settle adds the piece's cells to the tower and updates the height cache.
func (t *Tower) Settle(p Piece) {
	for _, c := range p.Cells() {
		t.occupied[c] = struct{}{}
		if c.Y+1 > t.heights[c.X] {
			t.heights[c.X] = c.Y + 1
		}
	}
}

// Profile returns each column's height above the lowest column, capped at
// window rows. It is the surface part of the cycle fingerprint.
func (t *Tower) Profile(window int) [Width]int {
	low := t.heights[0]
	for _, h := range t.heights[1:] {
		low = min(low, h)
	}

	var profile [Width]int
	for x, h := range t.heights {
		profile[x] = min(h-low, window)
	}
	return profile
}
