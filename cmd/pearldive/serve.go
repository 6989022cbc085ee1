package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pearldive/internal/content"
	"github.com/vovakirdan/pearldive/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pearl Dive SSH server",
	Long: `Start an SSH server that lets users connect and practice typing.

Each SSH connection gets its own session with the mode picker menu.
Pearls are stored per-server (all users share the same high score).
Sound is never played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pearldive/host_key

Examples:
  pearldive serve                           # Listen on :23235 with auto-generated key
  pearldive serve --ssh :2222               # Listen on port 2222
  pearldive serve --host-key ./my_host_key  # Use specific host key
  pearldive serve --db ./pearls.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	game := loadConfig()
	game.Audio.Enabled = false

	catalog, err := content.LoadCatalog(game.Content.WordsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.Game = game
	cfg.Catalog = catalog

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Pearl Dive SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
