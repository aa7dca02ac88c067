package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweeper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minesweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty picker.
Results are stored per-server (all users share the same best times).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.minesweeper/host_key

Examples:
  minesweeper serve                           # Listen on :23234 with auto-generated key
  minesweeper serve --ssh :2222               # Listen on port 2222
  minesweeper serve --host-key ./my_host_key  # Use specific host key
  minesweeper serve --db ./scores.db          # Use specific database
  minesweeper serve --max-sessions 10         # Allow at most 10 players

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 64, "Maximum concurrent players (0 for unlimited)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.DefaultDifficulty = appConfig.Default
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MaxSessions = flagMaxSessions

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
