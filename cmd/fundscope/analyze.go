package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orient-research/fundscope/pkg/fundscope/loader"
	"github.com/orient-research/fundscope/pkg/fundscope/metrics"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <workbook.xlsx>",
		Short: "Report the structure of a workbook",
		Long: `analyze loads and normalizes the workbook, then prints every sheet's
shape, each column's inferred kind, missing-value counts and basic numeric
statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workbook: %s (%d sheets)\n", wb.BookName, wb.NumSheets())
			for _, name := range wb.SheetNames() {
				sheet, _ := wb.Sheet(name)
				fmt.Fprintf(out, "\n--- %s ---\n", name)
				fmt.Fprintf(out, "rows: %d  columns: %d\n", sheet.NumRows(), sheet.NumColumns())
				for _, st := range metrics.ProfileSheet(sheet) {
					fmt.Fprintf(out, "  %-36s %-9s distinct=%d missing=%d", st.Name, st.Kind, st.Distinct, st.Missing)
					if st.Kind == models.KindNumeric {
						fmt.Fprintf(out, " sum=%.2f min=%.2f max=%.2f", st.Sum, st.Min, st.Max)
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}
