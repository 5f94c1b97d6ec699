package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-sim/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows a list of all puzzles registered in advent-sim.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	puzzles := registry.List()

	if len(puzzles) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen, maxSlugLen := 2, 5 // "ID", "Alias" headers
	for _, p := range puzzles {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxSlugLen = max(maxSlugLen, len(p.Slug))
	}

	fmt.Printf("  %3s  %-*s  %-*s  %s\n", "Day", maxIDLen, "ID", maxSlugLen, "Alias", "Title")
	fmt.Printf("  %3s  %-*s  %-*s  %s\n", "---", maxIDLen, "--", maxSlugLen, "-----", "-----")

	for _, p := range puzzles {
		fmt.Printf("  %3d  %-*s  %-*s  %s\n", p.Day, maxIDLen, p.ID, maxSlugLen, p.Slug, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'advent solve <id> --input <file>' to solve a puzzle.")
}
