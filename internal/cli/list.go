package cli

import (
	"github.com/spf13/cobra"

	jsondb "github.com/githubrepob/local-json-db"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Where []string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print records in file order",
		Long: `Print records in file order.

Repeatable --where filters restrict the output to records whose field
equals the given value:

  jsondb list --where role=admin --where active=true`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecords(opts, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Where, "where", nil, "equality filter field=value (repeatable)")

	return cmd
}

func listRecords(opts *ListOptions, cmd *cobra.Command) error {
	filters, err := parseFilters(opts.Where)
	if err != nil {
		return err
	}
	store, err := jsondb.New(opts.DB)
	if err != nil {
		return err
	}
	doc, err := store.Query(filters.match)
	if err != nil {
		return err
	}
	return renderDocument(cmd.OutOrStdout(), opts.Format, doc)
}
