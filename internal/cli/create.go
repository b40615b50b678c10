package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <json-object>",
		Short: "Append a new record",
		Long: `Append a new record built from the given JSON object.

The store assigns the id; an "id" field in the object is overwritten.
The stored record is printed:

  jsondb create '{"name": "alice", "role": "admin"}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields jsondb.Record
			if err := json.Unmarshal([]byte(args[0]), &fields); err != nil {
				return fmt.Errorf("invalid record JSON: %w", err)
			}
			store, err := jsondb.New(rootOpts.DB)
			if err != nil {
				return err
			}
			rec, err := store.Create(fields)
			if err != nil {
				return err
			}
			return renderRecord(cmd.OutOrStdout(), rootOpts.Format, rec)
		},
	}
}
