package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"paycheck-engine/internal/cli"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/taxtable"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [year]",
	Short: "Print the federal tables of a tax year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		year := cfg.Defaults.TaxYear
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			year = y
		}
		if year == 0 {
			year = taxtable.Latest()
		}

		t, fallback, err := newRegistry().Get(year)
		if err != nil {
			return err
		}

		if flagFormat == "json" {
			return writeJSON(t)
		}

		title := fmt.Sprintf("paycalc: %d tables", t.Year)
		if fallback {
			title += " (built-in)"
		}
		fmt.Println(cli.RenderTitle(title))
		for _, fs := range model.FilingStatuses {
			tbl := cli.Table{
				Title:   fmt.Sprintf("%s (standard deduction %s)", fs, cli.FormatMoney(t.StandardDeduction[fs])),
				Headers: []string{"From", "To", "Rate"},
			}
			for _, b := range t.Brackets[fs] {
				to := "and up"
				if !b.OpenEnded() {
					to = cli.FormatMoney(b.High)
				}
				tbl.Rows = append(tbl.Rows, []string{cli.FormatMoney(b.Low), to, cli.FormatPercent(b.Rate)})
			}
			fmt.Print(cli.RenderTable(tbl))
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Limits",
			Headers: []string{"Limit", "Amount"},
			Rows: [][]string{
				{"Social Security wage base", cli.FormatMoney(t.SSWageBase)},
				{"401(k) elective deferral", cli.FormatMoney(t.Retirement.Base)},
				{"  catch-up (50+)", cli.FormatMoney(t.Retirement.CatchUp)},
				{"  super catch-up (60-63)", cli.FormatMoney(t.Retirement.SuperCatchUp)},
				{"Dependent-care FSA", cli.FormatMoney(t.DependentCareFSA)},
				{"Medical FSA", cli.FormatMoney(t.MedicalFSA)},
			},
		}))
		return nil
	},
}

func init() {
	addFormatFlag(tablesCmd, "table, json")
}
