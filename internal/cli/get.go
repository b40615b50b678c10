package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <id>",
		Short:         "Print the record with the given id",
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
			rec, err := store.Get(id)
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("no record with id %d", id)
			}
			return renderRecord(cmd.OutOrStdout(), rootOpts.Format, rec)
		},
	}
}
