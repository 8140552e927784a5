// Package schedule turns a plan's annual figures into dated pay periods.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"paycheck-engine/internal/model"
)

const dateLayout = "2006-01-02"

// PayDates returns the pay dates of year for frequency f. Semimonthly pays
// on the 15th and the last day of the month, monthly on the last day, and
// weekly and biweekly on Fridays starting with the first Friday of January.
func PayDates(year int, f model.PayFrequency) ([]time.Time, error) {
	n, err := f.PeriodsPerYear()
	if err != nil {
		return nil, err
	}
	if year < 1900 || year > 2200 {
		return nil, model.Invalid("tax_year", "year %d out of range", year)
	}

	dates := make([]time.Time, 0, n)
	switch f {
	case model.Semimonthly:
		for m := time.January; m <= time.December; m++ {
			dates = append(dates, time.Date(year, m, 15, 0, 0, 0, 0, time.UTC), lastDay(year, m))
		}
	case model.Monthly:
		for m := time.January; m <= time.December; m++ {
			dates = append(dates, lastDay(year, m))
		}
	default:
		step := 7
		if f == model.Biweekly {
			step = 14
		}
		d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for d.Weekday() != time.Friday {
			d = d.AddDate(0, 0, 1)
		}
		for i := 0; i < n; i++ {
			dates = append(dates, d.AddDate(0, 0, i*step))
		}
	}
	return dates, nil
}

func lastDay(year int, m time.Month) time.Time {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC)
}

// DistributionPeriods returns the 1-based indexes of the periods that carry
// a profit distribution: the last pay date of each month, calendar quarter,
// or year.
func DistributionPeriods(dates []time.Time, f model.DistributionFrequency) ([]int, error) {
	if !f.Valid() {
		return nil, model.Invalid("distribution_frequency", "unsupported distribution frequency %q", string(f))
	}
	var bucket func(time.Time) int
	switch f {
	case model.DistributionMonthly:
		bucket = func(t time.Time) int { return int(t.Month()) }
	case model.DistributionQuarterly:
		bucket = func(t time.Time) int { return (int(t.Month()) + 2) / 3 }
	case model.DistributionAnnual:
		bucket = func(time.Time) int { return 0 }
	default:
		return nil, nil
	}

	var out []int
	for i, d := range dates {
		if i == len(dates)-1 || bucket(dates[i+1]) != bucket(d) {
			out = append(out, i+1)
		}
	}
	return out, nil
}

// Split divides amount into n cent-exact shares whose sum is amount rounded
// to cents. Leftover cents go to the earliest shares.
func Split(amount float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	total := decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()
	base := total / int64(n)
	extra := total % int64(n)

	out := make([]float64, n)
	for i := range out {
		cents := base
		if int64(i) < extra {
			cents++
		}
		out[i] = decimal.New(cents, -2).InexactFloat64()
	}
	return out
}

// Build returns the period inputs of plan and the indexes of its
// distribution periods.
func Build(plan *model.Plan) ([]model.PeriodInput, []int, error) {
	if err := validatePlan(plan); err != nil {
		return nil, nil, err
	}
	dates, err := PayDates(plan.TaxYear, plan.PayFrequency)
	if err != nil {
		return nil, nil, err
	}
	distIdx, err := DistributionPeriods(dates, plan.DistributionFrequency)
	if err != nil {
		return nil, nil, err
	}

	n := len(dates)
	salary := Split(plan.AnnualSalary, n)
	health := Split(plan.PreTax.HealthInsurance, n)
	dental := Split(plan.PreTax.DentalVision, n)
	dcfsa := Split(plan.PreTax.DependentCareFSA, n)
	medfsa := Split(plan.PreTax.MedicalFSA, n)
	pretaxRet := Split(plan.Contributions.PreTaxRetirement, n)
	roth := Split(plan.Contributions.RothRetirement, n)
	mortgage := Split(plan.Expenses.Mortgage, n)
	household := Split(plan.Expenses.Household, n)
	discretionary := Split(plan.Expenses.Discretionary, n)

	dist := make(map[int]float64, len(distIdx))
	if len(distIdx) > 0 {
		for i, amt := range Split(plan.AnnualDistribution, len(distIdx)) {
			dist[distIdx[i]] = amt
		}
	}

	periods := make([]model.PeriodInput, n)
	for i := range periods {
		periods[i] = model.PeriodInput{
			Index:        i + 1,
			Date:         dates[i].Format(dateLayout),
			BasePay:      salary[i],
			Distribution: dist[i+1],
			PreTax: model.PreTaxDeductions{
				HealthInsurance:  health[i],
				DentalVision:     dental[i],
				DependentCareFSA: dcfsa[i],
				MedicalFSA:       medfsa[i],
			},
			Contributions: model.Contributions{
				PreTaxRetirement: pretaxRet[i],
				RothRetirement:   roth[i],
			},
			Expenses: model.Expenses{
				Mortgage:      mortgage[i],
				Household:     household[i],
				Discretionary: discretionary[i],
			},
		}
	}
	return periods, distIdx, nil
}

func validatePlan(p *model.Plan) error {
	if p == nil {
		return model.Invalid("plan", "missing plan")
	}
	if !p.FilingStatus.Valid() {
		return model.Invalid("filing_status", "unsupported filing status %q", string(p.FilingStatus))
	}
	if p.Age < 0 || p.Age > 120 {
		return model.Invalid("age", "age %d out of range", p.Age)
	}
	if p.StateRate < 0 || p.StateRate > 1 {
		return model.Invalid("state_rate", "rate %v outside [0, 1]", p.StateRate)
	}
	amounts := []struct {
		field string
		v     float64
	}{
		{"annual_salary", p.AnnualSalary},
		{"annual_distribution", p.AnnualDistribution},
		{"pre_tax.health_insurance", p.PreTax.HealthInsurance},
		{"pre_tax.dental_vision", p.PreTax.DentalVision},
		{"pre_tax.dependent_care_fsa", p.PreTax.DependentCareFSA},
		{"pre_tax.medical_fsa", p.PreTax.MedicalFSA},
		{"contributions.pre_tax_retirement", p.Contributions.PreTaxRetirement},
		{"contributions.roth_retirement", p.Contributions.RothRetirement},
		{"expenses.mortgage", p.Expenses.Mortgage},
		{"expenses.household", p.Expenses.Household},
		{"expenses.discretionary", p.Expenses.Discretionary},
	}
	for _, a := range amounts {
		if a.v < 0 {
			return model.Invalid(a.field, "negative amount %v", a.v)
		}
	}
	return nil
}
