package engine

import (
	"math"

	"paycheck-engine/internal/model"
	"paycheck-engine/internal/tax"
)

// Summarize reduces period results into year totals. cfg may be nil, in
// which case the marginal rate is left at zero.
func Summarize(results []model.PeriodResult, cfg *model.ProjectionConfig) model.YearSummary {
	var s model.YearSummary
	s.Periods = len(results)

	for i := range results {
		r := &results[i]
		s.TotalGrossIncome += r.GrossPay
		s.TotalBasePay += r.BasePay
		s.TotalDistributions += r.Distribution
		s.PreTax = s.PreTax.Add(r.PreTax)
		s.TotalFederalTaxableWages += r.FederalTaxableWages
		s.TotalStateTaxableWages += r.StateTaxableWages
		s.TotalFederalWithholding += r.FederalWithholding
		s.TotalStateWithholding += r.StateWithholding
		s.FICA.SocialSecurity += r.SocialSecurityTax
		s.FICA.Medicare += r.MedicareTax
		s.FICA.AdditionalMedicare += r.AdditionalMedicareTax
		s.Contributions = s.Contributions.Add(r.Contributions)
		s.TotalNetPay += r.NetPay
		s.Expenses = s.Expenses.Add(r.Expenses)
		s.TotalInvestable += r.Investable
		s.TotalShortfall += r.Shortfall
	}

	s.TotalPreTaxDeductions = s.PreTax.Total()
	s.HealthBenefitSpend = s.PreTax.HealthSpend()
	s.TotalFICA = s.FICA.Total()
	s.TotalTax = s.TotalFederalWithholding + s.TotalStateWithholding + s.TotalFICA
	s.TotalRetirement = s.Contributions.Total()
	s.TotalExpenses = s.Expenses.Total()

	if s.TotalGrossIncome > 0 {
		s.EffectiveTaxRate = s.TotalTax / s.TotalGrossIncome
	}
	if cfg != nil && len(results) > 0 {
		taxable := math.Max(0, s.TotalFederalTaxableWages-cfg.StandardDeduction)
		s.MarginalTaxRate = tax.MarginalRate(taxable, cfg.FederalBrackets) + cfg.StateRate
	}
	return roundSummary(s)
}

func roundSummary(s model.YearSummary) model.YearSummary {
	for _, f := range []*float64{
		&s.TotalGrossIncome, &s.TotalBasePay, &s.TotalDistributions,
		&s.PreTax.HealthInsurance, &s.PreTax.DentalVision, &s.PreTax.DependentCareFSA, &s.PreTax.MedicalFSA,
		&s.TotalPreTaxDeductions, &s.HealthBenefitSpend,
		&s.TotalFederalTaxableWages, &s.TotalStateTaxableWages,
		&s.TotalFederalWithholding, &s.TotalStateWithholding,
		&s.FICA.SocialSecurity, &s.FICA.Medicare, &s.FICA.AdditionalMedicare, &s.TotalFICA, &s.TotalTax,
		&s.Contributions.PreTaxRetirement, &s.Contributions.RothRetirement, &s.TotalRetirement,
		&s.TotalNetPay,
		&s.Expenses.Mortgage, &s.Expenses.Household, &s.Expenses.Discretionary, &s.TotalExpenses,
		&s.TotalInvestable, &s.TotalShortfall,
	} {
		*f = cents(*f)
	}
	return s
}
