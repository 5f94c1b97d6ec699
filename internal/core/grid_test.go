package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid[int](3, 2)
	g.Set(Pt(2, 1), 7)
	g.Set(Pt(3, 1), 9) // ignored

	if v, ok := g.Get(Pt(2, 1)); !ok || v != 7 {
		t.Errorf("Get((2,1)) = %d, %v", v, ok)
	}

	outside := []Point{Pt(-1, 0), Pt(3, 0), Pt(0, -1), Pt(0, 2)}
	for _, p := range outside {
		if _, ok := g.Get(p); ok {
			t.Errorf("Get(%v) should report absent", p)
		}
		if g.At(p) != 0 {
			t.Errorf("At(%v) should return zero value", p)
		}
	}
}

func TestGridRows(t *testing.T) {
	g := NewGrid[rune](3, 2)
	for p := range g.Points() {
		g.Set(p, rune('a'+p.Y*3+p.X))
	}

	if got := string(g.Row(1)); got != "def" {
		t.Errorf("Row(1) = %q, expected \"def\"", got)
	}
	if g.Row(5) != nil || g.Row(-1) != nil {
		t.Error("out of range row should be nil")
	}
	if b := g.Bounds(); b != NewRect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestGridPointsOrder(t *testing.T) {
	g := NewGrid[bool](2, 2)
	var got []Point
	for p := range g.Points() {
		got = append(got, p)
	}
	expected := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1)}
	if fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("Points() = %v, expected %v", got, expected)
	}
}

func TestParseGrid(t *testing.T) {
	identity := func(_ Point, r rune) (rune, error) { return r, nil }

	tests := []struct {
		name    string
		text    string
		wantW   int
		wantH   int
		wantErr error
	}{
		{"rectangular", "ab\ncd\n", 2, 2, nil},
		{"crlf", "ab\r\ncd\r\n", 2, 2, nil},
		{"trailing spaces", "ab  \ncd\t\n  \n", 2, 2, nil},
		{"blank", " \n\n", 0, 0, ErrEmptyGrid},
		{"ragged", "abc\nd\n", 0, 0, ErrRagged},
		{"empty", "", 0, 0, ErrEmptyGrid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseGrid(tc.text, identity)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseGrid() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGrid() error = %v", err)
			}
			if g.W() != tc.wantW || g.H() != tc.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", g.W(), g.H(), tc.wantW, tc.wantH)
			}
		})
	}

	bad := errors.New("bad rune")
	_, err := ParseGrid("a?", func(_ Point, r rune) (rune, error) {
		if r == '?' {
			return 0, bad
		}
		return r, nil
	})
	if !errors.Is(err, bad) {
		t.Errorf("converter error should be wrapped, got %v", err)
	}
}
