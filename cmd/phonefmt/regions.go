package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"phonelink_backend/internal/regions"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List supported default regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range regions.NewRegistry().All() {
				fmt.Fprintf(w, "%s\t+%d\t%s\n", r.Code, r.CallingCode, r.Name)
			}
			return w.Flush()
		},
	}
}
