// Package cmd implements the CLI commands for tgmarkup using Cobra.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gaurav-prasanna/tgmarkup/config"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

var (
	flagEnv      string
	flagLogLevel string

	cfg *config.Config
)

// Status line helpers.
var (
	okf   = color.New(color.FgGreen).SprintfFunc()
	errf  = color.New(color.FgRed).SprintfFunc()
	infof = color.New(color.FgCyan).SprintfFunc()
)

var rootCmd = &cobra.Command{
	Use:   "tgmarkup",
	Short: "tgmarkup — compile markup trees into Telegram messages",
	Long: `tgmarkup compiles declarative markup trees (YAML or JSON) into Telegram
Bot API messages: plain text with formatting entities and an optional
inline or reply keyboard.

Usage:
  tgmarkup convert <path> [flags]
  tgmarkup send <path> [flags]`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", ".env", "Path to an optional .env file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")
}

// setup loads configuration and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagEnv)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.LogLevel = flagLogLevel
	}
	cfg = loaded
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg.SlogLevel()))
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errf("Error: %v", err))
		os.Exit(1)
	}
}
