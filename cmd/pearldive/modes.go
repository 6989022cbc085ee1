package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pearldive/internal/progression"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available modes",
	Run: func(_ *cobra.Command, _ []string) {
		printModes(os.Stdout)
	},
}

// printModes lists every mode and the treasure milestones.
func printModes(w io.Writer) {
	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)
	for _, m := range progression.Modes() {
		fmt.Fprintf(w, "  %-10s  %-18s  %s\n", m, m.Title(), m.Prompt())
	}

	ladder := make([]string, 0, len(progression.Milestones()))
	for _, p := range progression.Milestones() {
		ladder = append(ladder, fmt.Sprint(p))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Treasure unlocks at exactly %s pearls.\n", strings.Join(ladder, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Start one with: pearldive play <mode>")
}
