package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-sim/internal/registry"
)

var checkCmd = &cobra.Command{
	Use:   "check [puzzle]",
	Short: "Verify puzzles against their embedded samples",
	Long: `Solve each puzzle's worked example and compare with the known answers.
Exits with status 1 if any answer differs.

Examples:
  advent check
  advent check basin`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	var ids []string
	if len(args) == 1 {
		ids = []string{createPuzzle(args[0]).ID()}
	} else {
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
	}

	failed := 0
	for _, id := range ids {
		p := createPuzzle(id)
		sample := p.Sample()
		for _, part := range []registry.Part{registry.Part1, registry.Part2} {
			want := sample.Want(part)
			got, err := p.Solve(sample.Input, part)
			switch {
			case err != nil:
				failed++
				fmt.Printf("FAIL  %s %v: %v\n", id, part, err)
			case got != want:
				failed++
				fmt.Printf("FAIL  %s %v: got %d, want %d\n", id, part, got, want)
			default:
				fmt.Printf("ok    %s %v: %d\n", id, part, got)
			}
		}
	}

	if failed > 0 {
		logger.Error("sample check failed", "failures", failed)
		os.Exit(1)
	}
}
