package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orient-research/fundscope/pkg/fundscope/loader"
	"github.com/orient-research/fundscope/pkg/fundscope/output"
)

func newExportCmd() *cobra.Command {
	var (
		sheetName  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export <workbook.xlsx>",
		Short: "Export one normalized sheet as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			sheet, ok := wb.Sheet(sheetName)
			if !ok {
				return fmt.Errorf("sheet %q not found in %s", sheetName, wb.BookName)
			}

			if outputPath == "" {
				return output.WriteCSV(cmd.OutOrStdout(), sheet)
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			return output.WriteCSV(f, sheet)
		},
	}

	cmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "Sheet name to export (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	_ = cmd.MarkFlagRequired("sheet")
	return cmd
}
