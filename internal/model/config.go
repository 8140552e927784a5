package model

// Bracket taxes the half-open interval [Low, High) at Rate. High of zero
// marks the open-ended top bracket.
type Bracket struct {
	Low  float64 `json:"low"`
	High float64 `json:"high,omitempty"`
	Rate float64 `json:"rate"`
}

func (b Bracket) OpenEnded() bool {
	return b.High == 0
}

type PayrollRates struct {
	SocialSecurity              float64 `json:"social_security"`
	Medicare                    float64 `json:"medicare"`
	AdditionalMedicare          float64 `json:"additional_medicare"`
	AdditionalMedicareThreshold float64 `json:"additional_medicare_threshold"`
	NetEarningsFactor           float64 `json:"net_earnings_factor"`
}

// EmployeeRates are the employee share of FICA on W-2 wages.
func EmployeeRates() PayrollRates {
	return PayrollRates{
		SocialSecurity:              0.062,
		Medicare:                    0.0145,
		AdditionalMedicare:          0.009,
		AdditionalMedicareThreshold: 200000,
		NetEarningsFactor:           1,
	}
}

// SelfEmployedRates apply to guaranteed payments taxed as self-employment
// income: both FICA halves on 92.35% of net earnings.
func SelfEmployedRates() PayrollRates {
	return PayrollRates{
		SocialSecurity:              0.124,
		Medicare:                    0.029,
		AdditionalMedicare:          0.009,
		AdditionalMedicareThreshold: 200000,
		NetEarningsFactor:           0.9235,
	}
}

// Caps are the annual limits enforced across a year's periods.
type Caps struct {
	SocialSecurityWageBase float64 `json:"social_security_wage_base"`
	Retirement             float64 `json:"retirement"`
	DependentCareFSA       float64 `json:"dependent_care_fsa"`
	MedicalFSA             float64 `json:"medical_fsa"`
}

type ProjectionConfig struct {
	TaxYear                   int          `json:"tax_year"`
	FilingStatus              FilingStatus `json:"filing_status"`
	PeriodsPerYear            int          `json:"periods_per_year"`
	FederalBrackets           []Bracket    `json:"federal_brackets"`
	StandardDeduction         float64      `json:"standard_deduction"`
	StateRate                 float64      `json:"state_rate"`
	Payroll                   PayrollRates `json:"payroll"`
	Caps                      Caps         `json:"caps"`
	DistributionSchedule      []int        `json:"distribution_schedule,omitempty"`
	DistributionSubjectToFICA bool         `json:"distribution_subject_to_fica"`
}

// IsDistributionPeriod reports whether index is on the distribution schedule.
func (c *ProjectionConfig) IsDistributionPeriod(index int) bool {
	for _, i := range c.DistributionSchedule {
		if i == index {
			return true
		}
	}
	return false
}

// RetirementCaps are the elective-deferral limits of a tax year before the
// age adjustment.
type RetirementCaps struct {
	Base         float64 `json:"base"`
	CatchUp      float64 `json:"catch_up"`
	SuperCatchUp float64 `json:"super_catch_up"`
}
