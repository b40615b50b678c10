package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Remove all records with the given id",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			store, err := jsondb.New(rootOpts.DB)
			if err != nil {
				return err
			}
			deleted, err := store.Delete(id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no record with id %d", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", id)
			return nil
		},
	}
}
