package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagInput string
	flagPart  int
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle>",
	Short: "Solve a puzzle",
	Long: `Parse the input and print the answer for each requested part.

Without --input the embedded sample is solved. Use --input - to read stdin.

Examples:
  advent solve day17 --input input.txt
  advent solve 24 --part 2 --input -
  advent solve tower`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Input file (- for stdin, empty for the sample)")
	solveCmd.Flags().IntVarP(&flagPart, "part", "p", 0, "Part to solve: 1, 2 or 0 for both")
}

func runSolve(_ *cobra.Command, args []string) {
	p := createPuzzle(args[0])

	parts, err := partsFor(flagPart)
	if err != nil {
		fatalf("%v", err)
	}

	input, err := readInput(p, flagInput)
	if err != nil {
		fatalf("%v", err)
	}

	for _, part := range parts {
		start := time.Now()
		answer, err := p.Solve(input, part)
		if err != nil {
			fatalf("%s %v: %v", p.ID(), part, err)
		}
		logger.Info("solved", "puzzle", p.ID(), "part", int(part), "elapsed", time.Since(start).Round(time.Microsecond))
		fmt.Printf("%s %v: %d\n", p.ID(), part, answer)
	}
}
