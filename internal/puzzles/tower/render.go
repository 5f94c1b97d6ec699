package tower

import (
	"fmt"

	"github.com/vovakirdan/advent-sim/internal/core"
)

const hudHeight = 2

// Render draws the top of the chamber, the falling piece and a status line.
func (s *Simulator) Render(dst *core.Screen) {
	fields := fmt.Sprintf(" pieces: %d  height: %d", s.settled, s.Height())
	if s.cycle != nil {
		fields += fmt.Sprintf("  cycle: %d pieces/+%d rows", s.cycle.Period, s.cycle.HeightDelta)
	}
	dst.DrawHUD(0, " Pyroclastic Flow ", fields)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	visible := dst.Height() - hudHeight - 1
	if visible <= 0 || dst.Width() < Width+2 {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}

	top := s.tower.Height()
	if p, ok := s.Falling(); ok {
		for _, c := range p.Cells() {
			top = max(top, c.Y+1)
		}
	}
	base := max(0, top-visible)

	left := (dst.Width() - (Width + 2)) / 2
	floorY := dst.Height() - 1

	for row := base; row < base+visible; row++ {
		y := floorY - 1 - (row - base)
		dst.SetColored(left, y, '│', core.ColorBlue)
		dst.SetColored(left+Width+1, y, '│', core.ColorBlue)
		for x := range Width {
			c := core.Pt(x, row)
			switch {
			case s.falling != nil && s.falling.Covers(c):
				dst.SetColored(left+1+x, y, '@', core.ColorYellow)
			case s.tower.Occupied(c):
				dst.SetColored(left+1+x, y, '#', core.ColorOrange)
			default:
				dst.SetColored(left+1+x, y, '.', core.ColorGray)
			}
		}
	}

	floor := '─'
	if base > 0 {
		floor = '~'
	}
	dst.SetColored(left, floorY, '└', core.ColorBlue)
	dst.DrawHLine(left+1, floorY, Width, floor, core.ColorBlue)
	dst.SetColored(left+Width+1, floorY, '┘', core.ColorBlue)
}
