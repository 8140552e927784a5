package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"paycheck-engine/internal/cli"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/scenario"
)

var compareCmd = &cobra.Command{
	Use:   "compare <baseline-file> <alternative-file>...",
	Short: "Compare alternative scenarios against a baseline",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		alternatives := make([]model.ProjectionRequest, 0, len(args)-1)
		for _, path := range args[1:] {
			req, err := scenario.Load(path)
			if err != nil {
				return err
			}
			alternatives = append(alternatives, *req)
		}

		report, err := scenario.Compare(cmd.Context(), newProcessor(), *baseline, alternatives)
		if err != nil {
			return err
		}

		switch flagFormat {
		case "json":
			return writeJSON(report)
		case "table":
			fmt.Println(cli.RenderTitle("paycalc: compare"))
			fmt.Print(cli.RenderTable(cli.SummaryTable(report.Baseline.CalculationResult.Summary)))
			fmt.Print(cli.RenderTable(cli.ComparisonTable(report)))
			for _, alt := range report.Alternatives {
				fmt.Print(cli.RenderMessages(alt.Messages))
			}
			return nil
		}
		return fmt.Errorf("unknown format %q", flagFormat)
	},
}

func init() {
	addFormatFlag(compareCmd, "table, json")
}
