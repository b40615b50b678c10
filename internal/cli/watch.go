package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print a line whenever the store file changes",
		Long: `Block and print a line whenever the store file changes, including
changes made by other processes. Stop with Ctrl-C.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := jsondb.New(rootOpts.DB)
			if err != nil {
				return err
			}
			ch, err := store.Watch(ctx)
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "Watching store file", "path", rootOpts.DB)
			for range ch {
				fmt.Fprintf(cmd.OutOrStdout(), "%s changed\n", rootOpts.DB)
			}
			return ctx.Err()
		},
	}
}
