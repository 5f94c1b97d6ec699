package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagInputDir    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the visualizer SSH server",
	Long: `Start an SSH server that lets users connect and watch puzzles run.

Each SSH connection gets its own session. The session command picks the
puzzle and part; without one a picker is shown. Inputs are read from
<input-dir>/<id>.txt when present, otherwise the embedded sample is used.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.advent/host_key

Examples:
  advent serve                           # Listen on :23234 with auto-generated key
  advent serve --ssh :2222               # Listen on port 2222
  advent serve --input-dir ./inputs      # Serve real inputs

Users can connect with:
  ssh localhost -p 23234
  ssh localhost -p 23234 -t day24 2`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagInputDir, "input-dir", "", "Directory with <id>.txt puzzle inputs")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Catalog:     tui.Catalog{Config: appConfig, InputDir: flagInputDir},
		Options: tui.Options{
			Runtime:       core.RuntimeConfig{TickRate: appConfig.Watch.TickRate},
			StepsPerFrame: appConfig.Watch.StepsPerFrame,
		},
		Logger: logger.WithPrefix("advent-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting advent SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := server.ListenAndServe(ctx); err != nil {
		fatalf("server: %v", err)
	}
}
