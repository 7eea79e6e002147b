package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/garagekit/pkg/forms"
)

func newFormsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the record forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, f := range forms.Registry() {
				fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Description)
			}
			return w.Flush()
		},
	}
}
