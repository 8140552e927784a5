package model

type PreTaxDeductions struct {
	HealthInsurance  float64 `json:"health_insurance"`
	DentalVision     float64 `json:"dental_vision"`
	DependentCareFSA float64 `json:"dependent_care_fsa"`
	MedicalFSA       float64 `json:"medical_fsa"`
}

func (d PreTaxDeductions) Total() float64 {
	return d.HealthInsurance + d.DentalVision + d.DependentCareFSA + d.MedicalFSA
}

// HealthSpend excludes dependent care, which is not a health benefit.
func (d PreTaxDeductions) HealthSpend() float64 {
	return d.HealthInsurance + d.DentalVision + d.MedicalFSA
}

func (d PreTaxDeductions) Add(o PreTaxDeductions) PreTaxDeductions {
	return PreTaxDeductions{
		HealthInsurance:  d.HealthInsurance + o.HealthInsurance,
		DentalVision:     d.DentalVision + o.DentalVision,
		DependentCareFSA: d.DependentCareFSA + o.DependentCareFSA,
		MedicalFSA:       d.MedicalFSA + o.MedicalFSA,
	}
}

type Contributions struct {
	PreTaxRetirement float64 `json:"pre_tax_retirement"`
	RothRetirement   float64 `json:"roth_retirement"`
}

func (c Contributions) Total() float64 {
	return c.PreTaxRetirement + c.RothRetirement
}

func (c Contributions) Add(o Contributions) Contributions {
	return Contributions{
		PreTaxRetirement: c.PreTaxRetirement + o.PreTaxRetirement,
		RothRetirement:   c.RothRetirement + o.RothRetirement,
	}
}

type Expenses struct {
	Mortgage      float64 `json:"mortgage"`
	Household     float64 `json:"household"`
	Discretionary float64 `json:"discretionary"`
}

func (e Expenses) Total() float64 {
	return e.Mortgage + e.Household + e.Discretionary
}

func (e Expenses) Add(o Expenses) Expenses {
	return Expenses{
		Mortgage:      e.Mortgage + o.Mortgage,
		Household:     e.Household + o.Household,
		Discretionary: e.Discretionary + o.Discretionary,
	}
}

type PeriodInput struct {
	Index         int              `json:"index"`
	Date          string           `json:"date"`
	BasePay       float64          `json:"base_pay"`
	Distribution  float64          `json:"distribution,omitempty"`
	PreTax        PreTaxDeductions `json:"pre_tax"`
	Contributions Contributions    `json:"contributions"`
	Expenses      Expenses         `json:"expenses"`
}

type PeriodResult struct {
	Index        int     `json:"index"`
	Date         string  `json:"date"`
	GrossPay     float64 `json:"gross_pay"`
	BasePay      float64 `json:"base_pay"`
	Distribution float64 `json:"distribution"`

	PreTax              PreTaxDeductions `json:"pre_tax"`
	FederalTaxableWages float64          `json:"federal_taxable_wages"`
	StateTaxableWages   float64          `json:"state_taxable_wages"`
	FICAWages           float64          `json:"fica_wages"`

	FederalWithholding    float64 `json:"federal_withholding"`
	StateWithholding      float64 `json:"state_withholding"`
	SocialSecurityTax     float64 `json:"social_security_tax"`
	MedicareTax           float64 `json:"medicare_tax"`
	AdditionalMedicareTax float64 `json:"additional_medicare_tax"`

	Contributions Contributions `json:"contributions"`
	NetPay        float64       `json:"net_pay"`
	Expenses      Expenses      `json:"expenses"`
	Investable    float64       `json:"investable"`
	Shortfall     float64       `json:"shortfall"`

	SSCapReached               bool    `json:"ss_cap_reached"`
	IsDistributionPeriod       bool    `json:"is_distribution_period"`
	RetirementCapReached       bool    `json:"retirement_cap_reached"`
	DependentCareFSACapReached bool    `json:"dependent_care_fsa_cap_reached"`
	MedicalFSACapReached       bool    `json:"medical_fsa_cap_reached"`
	SSWageBaseRemaining        float64 `json:"ss_wage_base_remaining"`
}

// TotalTax is withholding plus FICA for the period.
func (r *PeriodResult) TotalTax() float64 {
	return r.FederalWithholding + r.StateWithholding + r.SocialSecurityTax + r.MedicareTax + r.AdditionalMedicareTax
}
