package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/platform/tui"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

var (
	flagWatchInput string
	flagWatchPart  int
)

var watchCmd = &cobra.Command{
	Use:   "watch [puzzle]",
	Short: "Watch a puzzle being solved step by step",
	Long: `Run the visualizer for a puzzle. Without a puzzle a picker is shown.

Controls:
  Space/P    - Pause
  N/Right    - Single step while paused
  +/-        - More or fewer steps per frame
  F          - Run to the answer
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  advent watch tower
  advent watch day24 --part 2 --input input.txt
  advent watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&flagWatchInput, "input", "i", "", "Input file (empty for the sample)")
	watchCmd.Flags().IntVarP(&flagWatchPart, "part", "p", 1, "Part to watch: 1 or 2")
}

func runWatch(_ *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: appConfig.Watch.TickRate,
		},
		StepsPerFrame: appConfig.Watch.StepsPerFrame,
	}

	if len(args) == 0 {
		if err := tui.RunSession(tui.Catalog{Config: appConfig}, opts); err != nil {
			fatalf("running visualizer: %v", err)
		}
		return
	}

	p := createPuzzle(args[0])
	part, err := registry.ParsePart(strconv.Itoa(flagWatchPart))
	if err != nil {
		fatalf("%v", err)
	}
	input, err := readInput(p, flagWatchInput)
	if err != nil {
		fatalf("%v", err)
	}

	title := fmt.Sprintf("Day %d: %s (%v)", p.Day(), p.Title(), part)
	source := func() (registry.Animation, error) {
		return p.Animate(input, part)
	}

	progress, err := tui.Run(title, source, opts)
	if err != nil {
		fatalf("running visualizer: %v", err)
	}
	if progress.Done {
		fmt.Printf("%s %v: %d\n", p.ID(), part, progress.Value)
	}
}
