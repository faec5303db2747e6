package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/yildizm/SortVis/internal/sorting"
)

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos"},
		Short:   "List the available algorithms and arrangements",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"", "Key", "Name", "Status"})
			for _, k := range sorting.Kinds() {
				status := "supported"
				if !k.Supported() {
					status = "not implemented"
				}
				tbl.AppendRow(table.Row{GetSupportEmoji(k.Supported()), k.String(), k.DisplayName(), status})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, GetEmoji("algorithm")+" Algorithms")
			fmt.Fprintln(out, tbl.Render())
			fmt.Fprintln(out)
			fmt.Fprintln(out, GetEmoji("arrangement")+" Arrangements")
			for _, name := range sorting.Arrangements() {
				fmt.Fprintf(out, "  • %s\n", name)
			}
		},
	}
}
