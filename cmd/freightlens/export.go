package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/freightlens/freightlens/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export profitability data as CSV",
		Long: `Ingest an orders file, run the profitability pipeline, and write the
results as CSV.

Examples:
  # Monthly summary, one row per period
  freightlens export orders.xlsx --monthly monthly.csv

  # Full enriched dataset, newest orders first
  freightlens export orders.xlsx --orders enriched.csv

  # Both in one pass
  freightlens export orders.xlsx --monthly monthly.csv --orders enriched.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("monthly", "", "Write the monthly summary CSV to this path")
	cmd.Flags().String("orders", "", "Write the enriched orders CSV to this path")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	monthlyPath, _ := cmd.Flags().GetString("monthly")
	ordersPath, _ := cmd.Flags().GetString("orders")

	if monthlyPath == "" && ordersPath == "" {
		return fmt.Errorf("nothing to export: pass --monthly and/or --orders")
	}

	result, err := runPipeline(args[0])
	if err != nil {
		return err
	}

	if monthlyPath != "" {
		if err := writeFile(monthlyPath, func(f *os.File) error {
			return export.WriteMonthlySummary(f, result.Summary)
		}); err != nil {
			return err
		}
		slog.Info("wrote monthly summary",
			"path", monthlyPath,
			"periods", len(result.Summary.Periods))
	}

	if ordersPath != "" {
		if err := writeFile(ordersPath, func(f *os.File) error {
			return export.WriteOrders(f, result.Orders)
		}); err != nil {
			return err
		}
		slog.Info("wrote enriched orders",
			"path", ordersPath,
			"orders", len(result.Orders))
	}

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}
