package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bloch"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bloch",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bloch version %s\n", strings.TrimSpace(bloch.Version))
		},
	}
}
