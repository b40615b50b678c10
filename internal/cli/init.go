package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty store file",
		Long: `Create an empty store file at the configured path.

The file is initialized with an empty JSON array. An existing file is
left untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := jsondb.New(rootOpts.DB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", rootOpts.DB)
			return nil
		},
	}
}
