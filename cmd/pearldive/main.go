// pearldive is a typing practice game for the terminal. Every correct answer
// earns pearls; streaks, levels and treasure milestones keep the dive going.
//
// Usage:
//
//	pearldive                   - Start the mode picker menu
//	pearldive menu              - Same as above
//	pearldive play <mode>       - Dive straight into a mode
//	pearldive modes             - List available modes
//	pearldive scores [mode]     - Show best dives
//	pearldive serve             - Start SSH server for remote play
//	pearldive config            - Print the configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible targets
//	--db <path>          - Set database path (default: ~/.pearldive/pearls.db)
//	--config <path>      - Use a specific config file
//	--mute               - Disable sound
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - Log level: debug, info, warn, error
//	--no-color           - Use the monochrome theme (also NO_COLOR)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pearldive/internal/audio"
	"github.com/vovakirdan/pearldive/internal/config"
	"github.com/vovakirdan/pearldive/internal/content"
	"github.com/vovakirdan/pearldive/internal/core"
	"github.com/vovakirdan/pearldive/internal/platform/tui"
	"github.com/vovakirdan/pearldive/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pearldive",
	Short: "Pearl Dive - typing practice in your terminal",
	Long: `Pearl Dive is a typing practice game. Type the letter, word, symbol
or password on screen to collect pearls.

Available commands:
  menu     - Interactive mode picker (default)
  play     - Start a specific mode directly
  modes    - Show all modes
  scores   - View best dives
  serve    - Start SSH server for remote play
  config   - Print the configuration

Examples:
  pearldive
  pearldive play words
  pearldive scores letters
  pearldive serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pearldive/pearls.db", "Path to pearls database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (env "+config.EnvLogFile+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Use the monochrome theme")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads .env files, the YAML config and environment overrides.
// Bad environment values are reported and skipped.
func loadConfig() config.Config {
	if err := config.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg
}

// newLogger builds the local logger. Play runs in the alternate screen, so
// without a log file everything is discarded. The returned file may be nil.
func newLogger() (*log.Logger, *os.File) {
	path := flagLogFile
	if path == "" {
		path = os.Getenv(config.EnvLogFile)
	}
	levelName := flagLogLevel
	if levelName == "" {
		levelName = os.Getenv(config.EnvLogLevel)
	}

	level := log.InfoLevel
	if levelName != "" {
		parsed, err := log.ParseLevel(levelName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			level = parsed
		}
	}

	var out io.Writer = io.Discard
	var file *os.File
	if path != "" {
		expanded, err := storage.ExpandPath(path)
		if err == nil {
			path = expanded
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			out = f
			file = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pearldive",
		Level:           level,
	})
	return logger, file
}

// localSession holds everything a local play session needs.
type localSession struct {
	deps    tui.Deps
	store   *storage.Store
	player  *audio.Player
	logFile *os.File
}

// openLocalSession wires config, content, storage, audio and logging for
// the local terminal.
func openLocalSession() *localSession {
	cfg := loadConfig()
	logger, logFile := newLogger()

	catalog, err := content.LoadCatalog(cfg.Content.WordsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s := &localSession{logFile: logFile}
	s.deps = tui.Deps{
		Catalog: catalog,
		Config:  cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Logger: logger,
	}

	// Open pearl storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open pearls database: %v\n", err)
	} else {
		s.store = store
		s.deps.Store = store
	}

	if !flagMute {
		s.player = audio.NewPlayer(cfg.Audio, logger)
		if err := s.player.Init(); err == nil {
			s.deps.Sound = s.player
		}
	}

	logger.Debug("session wired",
		"db", flagDBPath,
		"sound", s.deps.Sound != nil,
		"seed", flagSeed,
	)
	return s
}

// Close releases the speaker, database and log file.
func (s *localSession) Close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
