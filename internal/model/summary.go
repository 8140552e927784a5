package model

type FICABreakdown struct {
	SocialSecurity     float64 `json:"social_security"`
	Medicare           float64 `json:"medicare"`
	AdditionalMedicare float64 `json:"additional_medicare"`
}

func (f FICABreakdown) Total() float64 {
	return f.SocialSecurity + f.Medicare + f.AdditionalMedicare
}

type YearSummary struct {
	Periods            int     `json:"periods"`
	TotalGrossIncome   float64 `json:"total_gross_income"`
	TotalBasePay       float64 `json:"total_base_pay"`
	TotalDistributions float64 `json:"total_distributions"`

	PreTax                   PreTaxDeductions `json:"pre_tax"`
	TotalPreTaxDeductions    float64          `json:"total_pre_tax_deductions"`
	HealthBenefitSpend       float64          `json:"health_benefit_spend"`
	TotalFederalTaxableWages float64          `json:"total_federal_taxable_wages"`
	TotalStateTaxableWages   float64          `json:"total_state_taxable_wages"`

	TotalFederalWithholding float64       `json:"total_federal_withholding"`
	TotalStateWithholding   float64       `json:"total_state_withholding"`
	FICA                    FICABreakdown `json:"fica"`
	TotalFICA               float64       `json:"total_fica"`
	TotalTax                float64       `json:"total_tax"`

	Contributions   Contributions `json:"contributions"`
	TotalRetirement float64       `json:"total_retirement"`
	TotalNetPay     float64       `json:"total_net_pay"`
	Expenses        Expenses      `json:"expenses"`
	TotalExpenses   float64       `json:"total_expenses"`
	TotalInvestable float64       `json:"total_investable"`
	TotalShortfall  float64       `json:"total_shortfall"`

	EffectiveTaxRate float64 `json:"effective_tax_rate"`
	MarginalTaxRate  float64 `json:"marginal_tax_rate"`
}
