package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newGatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the available gates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tNAME\tFAMILY")
			for _, e := range a.engine.Catalog() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Symbol, e.Name, e.Family)
			}
			return w.Flush()
		},
	}
}
