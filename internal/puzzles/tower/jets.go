package tower

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/advent-sim/internal/core"
)

var (
	// ErrNoJets is returned when the jet pattern is empty.
	ErrNoJets = errors.New("tower: empty jet pattern")

	// ErrBadJet is returned for characters other than '<' and '>'.
	ErrBadJet = errors.New("tower: bad jet")
)

// Jet is one lateral push of the gas pattern.
type Jet int8

const (
	JetLeft  Jet = -1
	JetRight Jet = 1
)

// Delta returns the push as a chamber offset.
func (j Jet) Delta() core.Point {
	return core.Pt(int(j), 0)
}

func (j Jet) String() string {
	if j == JetLeft {
		return "<"
	}
	return ">"
}

// ParseJets parses a single line of '<' and '>' characters.
// Surrounding whitespace is ignored.
func ParseJets(line string) ([]Jet, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrNoJets
	}

	jets := make([]Jet, 0, len(line))
	for i, r := range line {
		switch r {
		case '<':
			jets = append(jets, JetLeft)
		case '>':
			jets = append(jets, JetRight)
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrBadJet, r, i)
		}
	}
	return jets, nil
}
