// Package cmd provides the CLI commands for the pomo application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nrcx/pomo/internal/adapters/notification"
	"github.com/nrcx/pomo/internal/adapters/sound"
	"github.com/nrcx/pomo/internal/adapters/tui"
	"github.com/nrcx/pomo/internal/config"
	"github.com/nrcx/pomo/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	noSound  bool
	noNotify bool

	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo - a Pomodoro countdown timer for the terminal",
	Long: `pomo is a terminal Pomodoro timer: 25 minute work sessions
alternating with 5 minute short breaks and a 15 minute long break
after every fourth session.

Run "pomo" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noSound, "no-sound", false, "Disable the completion tone")
	rootCmd.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomo\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// initializeConfig loads the configuration and applies flag overrides.
func initializeConfig() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	applyFlagOverrides(appConfig)
	return nil
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if noSound {
		cfg.Notifications.Sound = false
	}
	if noNotify {
		cfg.Notifications.Enabled = false
	}
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// runTimer wires the engine to its adapters and runs the TUI.
func runTimer(cmd *cobra.Command, args []string) error {
	timer := domain.NewTimer()
	beeper := sound.New(appConfig.Notifications.Sound)
	notifier := notification.New(&appConfig.Notifications)

	ctx := setupSignalHandler()
	if err := tui.Run(ctx, timer, &appConfig.Theme, beeper, notifier); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}

	// Recap for the run that just ended; nothing is persisted.
	stats := timer.Stats()
	if stats.WorkSessions > 0 {
		fmt.Printf("Completed %d work session(s), %d minutes focused. Nice work!\n",
			stats.WorkSessions, stats.FocusedMinutes)
	}
	return nil
}
