package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// SnapshotOptions holds flags for the snapshot command.
type SnapshotOptions struct {
	*RootOptions
	Dir string
}

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SnapshotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy the current document to a timestamped file",
		Long: `Copy the current document to a new file whose name sorts by creation
time. The snapshot path is printed. The store file is never modified.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := jsondb.New(opts.DB)
			if err != nil {
				return err
			}
			path, err := store.Snapshot(opts.Dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "snapshot directory (default: next to the store file)")

	return cmd
}
