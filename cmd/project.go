package cmd

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"paycheck-engine/internal/cli"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/scenario"
)

var projectCmd = &cobra.Command{
	Use:   "project <scenario-file>",
	Short: "Project a scenario file period by period",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		req, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		resp := newProcessor().Process(req)
		if err := writeProjection(resp); err != nil {
			return err
		}
		if resp.Failed() {
			return fmt.Errorf("projection %q failed", req.Scenario)
		}
		return nil
	},
}

func init() {
	addFormatFlag(projectCmd, "table, csv, json")
}

func writeProjection(resp *model.ProjectionResponse) error {
	switch flagFormat {
	case "json":
		return writeJSON(resp)
	case "csv":
		if resp.Failed() {
			fmt.Fprint(os.Stderr, cli.RenderMessages(resp.CalculationResult.Messages))
			return nil
		}
		return cli.WriteCSV(os.Stdout, resp.CalculationResult.Periods)
	case "table":
		res := resp.CalculationResult
		fmt.Println(cli.RenderTitle("paycalc: " + resp.CalculationMetadata.Scenario))
		if len(res.Periods) > 0 {
			fmt.Print(cli.RenderTable(cli.PeriodTable(res.Periods)))
		}
		if res.Summary != nil {
			fmt.Print(cli.RenderTable(cli.SummaryTable(res.Summary)))
			investable := make([]float64, len(res.Periods))
			for i, p := range res.Periods {
				investable[i] = p.Investable
			}
			fmt.Println("  Investable per period " + cli.RenderSparkline(investable))
		}
		fmt.Print(cli.RenderMessages(res.Messages))
		return nil
	}
	return fmt.Errorf("unknown format %q", flagFormat)
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
