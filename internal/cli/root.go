// Package cli implements the jsondb command line tool, a thin maintenance
// and inspection layer over the store library.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"slices"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DB       string
	LogLevel string
	Format   string // "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "yaml"}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root command for the jsondb CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "jsondb",
		Short:   "Inspect and edit single-file JSON record stores",
		Long:    "jsondb manages a local store file holding a JSON array of records:\ncreate, update, delete and filter records, take snapshots and watch for\nchanges made by other processes.",
		Version: buildVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Missing .env is fine; plain environment variables still apply.
			_ = godotenv.Load()
			if !cmd.Flags().Changed("db") {
				if v := os.Getenv("JSONDB_PATH"); v != "" {
					opts.DB = v
				}
			}
			if !cmd.Flags().Changed("log-level") {
				if v := os.Getenv("JSONDB_LOG_LEVEL"); v != "" {
					opts.LogLevel = v
				}
			}
			if err := initLogging(opts.LogLevel); err != nil {
				return err
			}
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "db.json", "path to the store file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|yaml)")

	// Add subcommands
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewSnapshotCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// initLogging installs the process-wide logger at the requested level.
func initLogging(level string) error {
	ll := &slog.LevelVar{}
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
		ll.Set(slog.LevelInfo)
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %q", level)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)
	return nil
}

func buildVersion() string {
	version := "dev"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 8 {
			version += " (" + setting.Value[:8] + ")"
		}
	}
	return version
}
