package model

type DistributionFrequency string

const (
	DistributionNone      DistributionFrequency = "none"
	DistributionMonthly   DistributionFrequency = "monthly"
	DistributionQuarterly DistributionFrequency = "quarterly"
	DistributionAnnual    DistributionFrequency = "annual"
)

func (f DistributionFrequency) Valid() bool {
	switch f {
	case "", DistributionNone, DistributionMonthly, DistributionQuarterly, DistributionAnnual:
		return true
	}
	return false
}

// Plan holds the annual figures a user enters. Building a plan spreads
// every annual amount over the pay calendar.
type Plan struct {
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`
	Age          int          `json:"age"`
	PayFrequency PayFrequency `json:"pay_frequency"`
	StateRate    float64      `json:"state_rate"`

	// SelfEmployed taxes base pay as K-1 guaranteed payments.
	SelfEmployed bool    `json:"self_employed"`
	AnnualSalary float64 `json:"annual_salary"`

	AnnualDistribution        float64               `json:"annual_distribution"`
	DistributionFrequency     DistributionFrequency `json:"distribution_frequency"`
	DistributionSubjectToFICA bool                  `json:"distribution_subject_to_fica"`

	PreTax        PreTaxDeductions `json:"pre_tax"`
	Contributions Contributions    `json:"contributions"`
	Expenses      Expenses         `json:"expenses"`
}

// AnnualGross is the income the projection must reproduce period by period.
func (p *Plan) AnnualGross() float64 {
	if p.DistributionFrequency == "" || p.DistributionFrequency == DistributionNone {
		return p.AnnualSalary
	}
	return p.AnnualSalary + p.AnnualDistribution
}

func (p *Plan) Clone() *Plan {
	c := *p
	return &c
}
