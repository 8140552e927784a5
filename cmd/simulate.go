package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"paycheck-engine/internal/cli"
	"paycheck-engine/internal/growth"
	"paycheck-engine/internal/scenario"
)

var (
	simDividends  growth.DividendParams
	simMonteCarlo growth.SimulationParams
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario-file>",
	Short: "Grow a scenario's yearly investable proceeds over time",
	Long: `simulate projects the scenario, then invests its yearly investable total
every year: once with fixed price growth and dividends, and once across
Monte Carlo paths of normally distributed returns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		resp := newProcessor().Process(req)
		if resp.Failed() {
			fmt.Print(cli.RenderMessages(resp.CalculationResult.Messages))
			return fmt.Errorf("projection %q failed", req.Scenario)
		}
		annual := resp.CalculationResult.Summary.TotalInvestable

		div := simDividends
		div.AnnualContribution = annual
		div.Years = simMonteCarlo.Years
		div.StartingBalance = simMonteCarlo.StartingBalance
		years, err := growth.ProjectDividends(div)
		if err != nil {
			return err
		}

		mc := simMonteCarlo
		mc.AnnualContribution = annual
		res, err := growth.MonteCarlo(cmd.Context(), mc)
		if err != nil {
			return err
		}

		switch flagFormat {
		case "json":
			return writeJSON(map[string]any{
				"scenario":            req.Scenario,
				"annual_contribution": annual,
				"dividends":           years,
				"monte_carlo":         res,
			})
		case "table":
			fmt.Println(cli.RenderTitle("paycalc: simulate " + req.Scenario))
			fmt.Printf("  Investing %s per year\n", cli.FormatMoney(annual))
			fmt.Print(cli.RenderTable(cli.DividendTable(years)))
			fmt.Print(cli.RenderTable(cli.SimulationTable(res)))
			fmt.Printf("  Chance of ending below contributions: %s\n", cli.FormatPercent(res.ShortfallProbability))
			return nil
		}
		return fmt.Errorf("unknown format %q", flagFormat)
	},
}

func init() {
	addFormatFlag(simulateCmd, "table, json")
	f := simulateCmd.Flags()
	f.Float64Var(&simMonteCarlo.StartingBalance, "balance", 0, "starting balance")
	f.IntVar(&simMonteCarlo.Years, "years", 30, "years to project")
	f.IntVar(&simMonteCarlo.Paths, "paths", 5000, "Monte Carlo paths")
	f.Float64Var(&simMonteCarlo.MeanReturn, "mean-return", 0.06, "mean annual return")
	f.Float64Var(&simMonteCarlo.Volatility, "volatility", 0.15, "standard deviation of annual returns")
	f.Uint64Var(&simMonteCarlo.Seed, "seed", 1, "random seed")
	f.IntVar(&simMonteCarlo.Workers, "workers", 0, "concurrent chunks (0 = unlimited)")
	f.Float64Var(&simDividends.PriceGrowth, "price-growth", 0.04, "annual price appreciation")
	f.Float64Var(&simDividends.DividendYield, "dividend-yield", 0.02, "annual dividend yield")
	f.Float64Var(&simDividends.DividendTaxRate, "dividend-tax", 0.15, "tax rate on dividends")
	f.BoolVar(&simDividends.Reinvest, "drip", true, "reinvest dividends")
}
