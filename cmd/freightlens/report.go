package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/freightlens/freightlens/internal/common"
	"github.com/freightlens/freightlens/internal/engine"
	"github.com/freightlens/freightlens/internal/ingest"
	"github.com/freightlens/freightlens/internal/render"
)

// progressThreshold is the row count above which the report command shows a
// progress bar while normalizing.
const progressThreshold = 500

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Render a profitability report for an orders file",
		Long: `Ingest an orders spreadsheet (.xlsx) or delimited file (.csv), compute
monthly and cost-category profitability, and render the report to the
terminal.

Examples:
  # Styled dashboard
  freightlens report orders.xlsx

  # Plain executive summary
  freightlens report orders.xlsx --summary

  # Grayscale theme for basic terminals
  freightlens report orders.csv --theme mono`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}

	cmd.Flags().Bool("summary", false, "Print the executive summary instead of the dashboard")
	cmd.Flags().String("theme", "", "Render theme (default, mono)")
	_ = viper.BindPFlag("theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	execSummary, _ := cmd.Flags().GetBool("summary")

	result, err := runPipeline(args[0])
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(render.ThemeByName(viper.GetString("theme")))

	var out string
	if execSummary {
		out = renderer.ExecutiveSummary(result.Summary)
	} else {
		out = renderer.Dashboard(result.Summary)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// runPipeline ingests one file and runs the full engine over it. Schema and
// parse failures come back as user-facing messages naming the offending
// column or row.
func runPipeline(path string) (*engine.Result, error) {
	table, err := ingest.Read(path, delimiterFromConfig())
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not read %s", path), err)
	}

	slog.Debug("ingested table",
		"file", path,
		"columns", len(table.Header),
		"rows", len(table.Rows))

	opts := []engine.Option{}
	if len(table.Rows) >= progressThreshold {
		bar := progressbar.NewOptions(len(table.Rows),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Normalizing orders..."),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		opts = append(opts, engine.WithProgress(func(done, _ int) {
			_ = bar.Set(done)
		}))
	}

	return engine.Run(table, columnsFromConfig(), opts...)
}
