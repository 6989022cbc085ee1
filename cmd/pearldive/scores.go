package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pearldive/internal/progression"
	"github.com/vovakirdan/pearldive/internal/storage"
)

var (
	flagRecent bool
	flagStats  bool
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best dives",
	Long: `Display the top 10 sessions and the all-time high score.
Without a mode, sessions from every mode are listed.

Examples:
  pearldive scores
  pearldive scores words
  pearldive scores --recent
  pearldive scores --stats
  pearldive scores letters --reset   # Forget letters history
  pearldive scores --reset           # Forget everything, including the high score`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-mode statistics")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete recorded sessions")
}

func runScores(_ *cobra.Command, args []string) {
	var mode progression.Mode
	title := "All modes"
	if len(args) == 1 {
		m, ok := progression.ParseMode(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'pearldive modes' to see available modes.")
			os.Exit(1)
		}
		mode = m
		title = m.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pearls database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagReset:
		resetScores(store, mode)
	case flagStats:
		printStats(store, mode)
	default:
		printSessions(store, mode, title)
	}
}

func printSessions(store *storage.Store, mode progression.Mode, title string) {
	var (
		sessions []storage.SessionRecord
		err      error
	)
	if flagRecent {
		sessions, err = store.RecentSessions(10)
		title = "Recent"
	} else {
		sessions, err = store.TopSessions(mode, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	fmt.Printf("Best Dives - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No dives recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pearldive play letters' to collect the first pearls!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-8s  %s\n", "Rank", "Pearls", "Level", "Accuracy", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-8s  %s\n", "----", "------", "-----", "--------", "----", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-6d  %-5d  %-8s  %-8s  %s\n",
			i+1, s.Pearls, s.Level, fmt.Sprintf("%d%%", s.Accuracy), s.Mode, s.StartedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.LoadHighScore(); err == nil {
		fmt.Printf("All-time best: %d pearls\n", highScore)
	}
}

func printStats(store *storage.Store, mode progression.Mode) {
	var stats []*storage.ModeStats
	if mode != "" {
		st, err := store.GetModeStats(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		stats = append(stats, st)
	} else {
		all, err := store.GetAllModeStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		for _, m := range progression.Modes() {
			if st, ok := all[m]; ok {
				stats = append(stats, st)
			}
		}
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %-7s  %s\n", "Mode", "Sessions", "Best", "Avg", "Correct", "Last played")
	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "--------", "----", "---", "-------", "-----------")
	for _, st := range stats {
		last := "-"
		if st.Sessions > 0 {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-8s  %-8d  %-6d  %-6.1f  %-7d  %s\n",
			st.Mode, st.Sessions, st.BestPearls, st.AvgPearls, st.TotalCorrect, last)
	}
}

func resetScores(store *storage.Store, mode progression.Mode) {
	modes := progression.Modes()
	if mode != "" {
		modes = []progression.Mode{mode}
	}
	for _, m := range modes {
		if err := store.ClearSessions(m); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if mode != "" {
		fmt.Printf("Cleared %s history.\n", mode.Title())
		return
	}
	if err := store.ResetHighScore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Cleared all history and the high score.")
}
