// Package main provides the fundscope CLI: serve the dashboard API,
// analyze a workbook's structure, or export a sheet to CSV.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fundscope",
		Short: "Broadband-funding workbook analytics",
		Long: `fundscope ingests a multi-sheet xlsx workbook of broadband-funding
data, normalizes every column to a stable kind, and serves derived
metrics, rollups, filters and CSV exports over an HTTP API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
