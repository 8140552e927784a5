package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"paycheck-engine/internal/growth"
	"paycheck-engine/internal/jsonpatch"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/scenario"
)

func PeriodTable(results []model.PeriodResult) Table {
	t := Table{
		Title:   "Pay periods",
		Headers: []string{"#", "Date", "Gross", "Pre-tax", "Retirement", "Federal", "State", "FICA", "Net", "Investable", "SS cap"},
	}
	for _, r := range results {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Index),
			r.Date,
			FormatMoney(r.GrossPay),
			FormatMoney(r.PreTax.Total()),
			FormatMoney(r.Contributions.Total()),
			FormatMoney(r.FederalWithholding),
			FormatMoney(r.StateWithholding),
			FormatMoney(r.SocialSecurityTax + r.MedicareTax + r.AdditionalMedicareTax),
			FormatMoney(r.NetPay),
			FormatMoney(r.Investable),
			FormatFlag(r.SSCapReached),
		})
	}
	return t
}

func SummaryTable(s *model.YearSummary) Table {
	return Table{
		Title:   "Year summary",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Gross income", FormatMoney(s.TotalGrossIncome)},
			{"  Base pay", FormatMoney(s.TotalBasePay)},
			{"  Distributions", FormatMoney(s.TotalDistributions)},
			{"Pre-tax deductions", FormatMoney(s.TotalPreTaxDeductions)},
			{"  Health benefits", FormatMoney(s.HealthBenefitSpend)},
			{"Federal withholding", FormatMoney(s.TotalFederalWithholding)},
			{"State withholding", FormatMoney(s.TotalStateWithholding)},
			{"Social Security", FormatMoney(s.FICA.SocialSecurity)},
			{"Medicare", FormatMoney(s.FICA.Medicare)},
			{"Additional Medicare", FormatMoney(s.FICA.AdditionalMedicare)},
			{"---"},
			{"Total tax", FormatMoney(s.TotalTax)},
			{"Retirement contributions", FormatMoney(s.TotalRetirement)},
			{"Net pay", FormatMoney(s.TotalNetPay)},
			{"Fixed expenses", FormatMoney(s.TotalExpenses)},
			{"Investable", FormatMoney(s.TotalInvestable)},
			{"Shortfall", FormatMoney(s.TotalShortfall)},
			{"---"},
			{"Effective tax rate", FormatPercent(s.EffectiveTaxRate)},
			{"Marginal tax rate", FormatPercent(s.MarginalTaxRate)},
		},
	}
}

// RenderMessages lists calculation messages, CRITICAL ones highlighted.
func RenderMessages(msgs []model.CalculationMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		style := warnStyle
		if m.Level == model.LevelCritical {
			style = errorStyle
		}
		line := fmt.Sprintf("%s %s: %s", m.Level, m.Code, m.Message)
		if m.Period > 0 {
			line += fmt.Sprintf(" (period %d)", m.Period)
		}
		b.WriteString("  ")
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// ComparisonTable shows, per alternative, the change of the headline
// summary fields against the baseline.
func ComparisonTable(r *scenario.Report) Table {
	fields := []struct {
		label string
		path  string
	}{
		{"Gross", "/total_gross_income"},
		{"Total tax", "/total_tax"},
		{"Retirement", "/total_retirement"},
		{"Net pay", "/total_net_pay"},
		{"Investable", "/total_investable"},
	}

	t := Table{Title: "Against baseline " + r.Baseline.CalculationMetadata.Scenario, Headers: []string{"Scenario"}}
	for _, f := range fields {
		t.Headers = append(t.Headers, f.label)
	}
	for _, alt := range r.Alternatives {
		row := []string{alt.Scenario}
		if alt.Outcome != model.OutcomeSuccess {
			row = append(row, alt.Outcome)
			t.Rows = append(t.Rows, row)
			continue
		}
		deltas := deltasByPath(alt.Patch)
		for _, f := range fields {
			row = append(row, FormatDelta(deltas[f.path]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func deltasByPath(ops []jsonpatch.Operation) map[string]float64 {
	out := make(map[string]float64, len(ops))
	for _, op := range ops {
		if op.Delta != nil {
			out[op.Path] = *op.Delta
		}
	}
	return out
}

func DividendTable(years []growth.DividendYear) Table {
	t := Table{
		Title:   "Dividend growth",
		Headers: []string{"Year", "Start", "Contribution", "Appreciation", "Dividends", "Tax", "Reinvested", "Cash", "End"},
	}
	for _, y := range years {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(y.Year),
			FormatMoney(y.StartBalance),
			FormatMoney(y.Contribution),
			FormatMoney(y.Appreciation),
			FormatMoney(y.Dividends),
			FormatMoney(y.DividendTax),
			FormatMoney(y.Reinvested),
			FormatMoney(y.CashPaid),
			FormatMoney(y.EndBalance),
		})
	}
	return t
}

func SimulationTable(res *growth.SimulationResult) Table {
	t := Table{
		Title:   fmt.Sprintf("Monte Carlo (%s paths)", FormatNumber(int64(res.Paths))),
		Headers: []string{"Year", "P10", "Median", "P90", "Mean"},
	}
	for _, y := range res.Years {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(y.Year),
			FormatMoney(y.P10),
			FormatMoney(y.P50),
			FormatMoney(y.P90),
			FormatMoney(y.Mean),
		})
	}
	return t
}

var csvHeader = []string{
	"index", "date", "base_pay", "distribution", "gross_pay",
	"health_insurance", "dental_vision", "dependent_care_fsa", "medical_fsa",
	"federal_taxable_wages", "state_taxable_wages", "fica_wages",
	"federal_withholding", "state_withholding", "social_security_tax", "medicare_tax", "additional_medicare_tax",
	"pre_tax_retirement", "roth_retirement", "net_pay", "expenses", "investable", "shortfall",
	"ss_cap_reached", "is_distribution_period", "retirement_cap_reached", "ss_wage_base_remaining",
}

// WriteCSV writes one row per period result.
func WriteCSV(w io.Writer, results []model.PeriodResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	money := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Index), r.Date,
			money(r.BasePay), money(r.Distribution), money(r.GrossPay),
			money(r.PreTax.HealthInsurance), money(r.PreTax.DentalVision),
			money(r.PreTax.DependentCareFSA), money(r.PreTax.MedicalFSA),
			money(r.FederalTaxableWages), money(r.StateTaxableWages), money(r.FICAWages),
			money(r.FederalWithholding), money(r.StateWithholding),
			money(r.SocialSecurityTax), money(r.MedicareTax), money(r.AdditionalMedicareTax),
			money(r.Contributions.PreTaxRetirement), money(r.Contributions.RothRetirement),
			money(r.NetPay), money(r.Expenses.Total()), money(r.Investable), money(r.Shortfall),
			strconv.FormatBool(r.SSCapReached), strconv.FormatBool(r.IsDistributionPeriod),
			strconv.FormatBool(r.RetirementCapReached), money(r.SSWageBaseRemaining),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
