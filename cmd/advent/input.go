package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/advent-sim/internal/registry"
)

// readInput returns the puzzle input: the file at path, stdin for "-", or
// the puzzle's embedded sample when path is empty.
func readInput(p registry.Puzzle, path string) (string, error) {
	switch path {
	case "":
		return p.Sample().Input, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// partsFor expands the --part flag: 0 means both parts.
func partsFor(part int) ([]registry.Part, error) {
	switch part {
	case 0:
		return []registry.Part{registry.Part1, registry.Part2}, nil
	case 1:
		return []registry.Part{registry.Part1}, nil
	case 2:
		return []registry.Part{registry.Part2}, nil
	}
	return nil, fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
}

// createPuzzle resolves a puzzle name or exits with a hint.
func createPuzzle(name string) registry.Puzzle {
	p, err := registry.Create(name, appConfig)
	if err != nil {
		fatalf("%v\nRun 'advent list' to see available puzzles.", err)
	}
	return p
}
