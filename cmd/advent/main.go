// advent runs cycle-accelerated and time-expanded puzzle solvers from the
// terminal, and visualizes them step by step locally or over SSH.
//
// Usage:
//
//	advent list                      - List available puzzles
//	advent solve <puzzle>            - Print the answers for an input
//	advent check [puzzle]            - Verify the embedded samples
//	advent watch [puzzle]            - Watch a puzzle being solved
//	advent serve                     - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>     - Custom configuration YAML
//	--log-level <level> - debug, info, warn or error (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-sim/internal/config"

	// Import puzzles to register them
	_ "github.com/vovakirdan/advent-sim/internal/puzzles/basin"
	_ "github.com/vovakirdan/advent-sim/internal/puzzles/tower"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Set up by the root pre-run hook.
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent Sim - solve and watch simulation puzzles in your terminal",
	Long: `Advent Sim solves two simulation puzzles and lets you watch them run:

  day17 (tower)  - Pyroclastic Flow: falling rocks pushed by jets, with
                   cycle detection to reach a trillion pieces
  day24 (basin)  - Blizzard Basin: shortest walk through moving blizzards

Available commands:
  list     - Show all available puzzles
  solve    - Print answers for an input file
  check    - Run the embedded samples against their known answers
  watch    - Step-by-step visualizer
  serve    - Start SSH server for remote viewing

Examples:
  advent list
  advent solve day17 --input input.txt
  advent solve basin --part 2 < input.txt
  advent check
  advent watch tower
  advent serve --ssh :2222`,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and installs the process logger.
func setup(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	appConfig = cfg

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		fatalf("%v", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "advent",
		Level:           level,
	})
	log.SetDefault(logger)
}

// fatalf prints an error and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
