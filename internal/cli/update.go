package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <json-object>",
		Short: "Merge fields into an existing record",
		Long: `Shallow-merge the given JSON object into the record with the given id.

Fields present in the object overwrite the stored values; all other
fields are kept. The merged record is printed:

  jsondb update 1755854400000 '{"role": "user"}'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var fields jsondb.Record
			if err := json.Unmarshal([]byte(args[1]), &fields); err != nil {
				return fmt.Errorf("invalid record JSON: %w", err)
			}
			store, err := jsondb.New(rootOpts.DB)
			if err != nil {
				return err
			}
			rec, err := store.Update(id, fields)
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
