package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pearldive/internal/platform/tui"
	"github.com/vovakirdan/pearldive/internal/progression"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Dive straight into a mode",
	Long: `Start a session in the specified mode.

Modes:
  letters   - Single letters, digits and punctuation
  words     - Short themed words
  special   - Special characters
  password  - Random passwords

Controls:
  Type       - Answer the target
  Esc        - Back to the mode menu
  Ctrl+R     - Restart the session
  Ctrl+T     - Toggle sound
  Ctrl+C     - Quit

Examples:
  pearldive play letters
  pearldive play words --mute
  pearldive play password --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode, ok := progression.ParseMode(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'pearldive modes' to see available modes.")
		os.Exit(1)
	}

	s := openLocalSession()
	runErr := tui.Run(s.deps, mode)

	// Close before potential exit
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
