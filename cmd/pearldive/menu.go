package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pearldive/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start Pearl Dive in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode.
Esc during a dive returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Best dives
  Q            - Quit

Examples:
  pearldive menu
  pearldive menu --db ./pearls.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := openLocalSession()
	runErr := tui.Run(s.deps, "")
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
