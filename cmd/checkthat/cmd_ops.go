package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/isti03/checkthat-generator/java"
	"github.com/isti03/checkthat-generator/script"
	"github.com/spf13/cobra"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List script operations and conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OPERATION\tDESCRIPTION")
			for _, op := range script.Operations() {
				fmt.Fprintf(tw, "%s\t%s\n", op.Name, op.Help)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "CONDITION\tMODIFIER")
			for _, c := range java.Conditions() {
				fmt.Fprintf(tw, "%s\t%s\n", c, c.Modifier())
			}
			return tw.Flush()
		},
	}
}
