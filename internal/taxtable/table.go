// Package taxtable holds the federal figures of a tax year and a registry
// that can refresh them from a remote table service.
package taxtable

import (
	"paycheck-engine/internal/limits"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/tax"
)

type YearTable struct {
	Year              int                            `json:"year"`
	Brackets          tax.Table                      `json:"brackets"`
	StandardDeduction map[model.FilingStatus]float64 `json:"standard_deduction"`
	SSWageBase        float64                        `json:"social_security_wage_base"`
	Retirement        model.RetirementCaps           `json:"retirement"`
	DependentCareFSA  float64                        `json:"dependent_care_fsa"`
	MedicalFSA        float64                        `json:"medical_fsa"`
}

func (t *YearTable) Validate() error {
	if t.Year <= 0 {
		return model.Invalid("year", "missing tax year")
	}
	for _, fs := range model.FilingStatuses {
		if err := tax.ValidateBrackets(t.Brackets[fs]); err != nil {
			return err
		}
		if d, ok := t.StandardDeduction[fs]; !ok {
			return model.Invalid("standard_deduction", "missing %s", fs)
		} else if d < 0 {
			return model.Invalid("standard_deduction", "negative %s deduction %v", fs, d)
		}
	}

	// A zero wage base or deferral limit would silently zero out Social
	// Security tax or every 401(k) election.
	if t.SSWageBase <= 0 {
		return model.Invalid("social_security_wage_base", "must be positive, got %v", t.SSWageBase)
	}
	if t.Retirement.Base <= 0 {
		return model.Invalid("retirement.base", "must be positive, got %v", t.Retirement.Base)
	}
	for field, v := range map[string]float64{
		"retirement.catch_up":       t.Retirement.CatchUp,
		"retirement.super_catch_up": t.Retirement.SuperCatchUp,
		"dependent_care_fsa":        t.DependentCareFSA,
		"medical_fsa":               t.MedicalFSA,
	} {
		if v < 0 {
			return model.Invalid(field, "must not be negative, got %v", v)
		}
	}
	return nil
}

// ConfigOptions are the taxpayer facts a table needs to become a
// projection configuration.
type ConfigOptions struct {
	FilingStatus              model.FilingStatus
	Age                       int
	StateRate                 float64
	PeriodsPerYear            int
	SelfEmployed              bool
	DistributionSchedule      []int
	DistributionSubjectToFICA bool
}

// Config assembles a projection configuration from the table.
func (t *YearTable) Config(opts ConfigOptions) (*model.ProjectionConfig, error) {
	if !opts.FilingStatus.Valid() {
		return nil, model.Invalid("filing_status", "unsupported filing status %q", string(opts.FilingStatus))
	}
	brackets, ok := t.Brackets[opts.FilingStatus]
	if !ok {
		return nil, model.Invalid("filing_status", "no %d brackets for %s", t.Year, opts.FilingStatus)
	}

	payroll := model.EmployeeRates()
	if opts.SelfEmployed {
		payroll = model.SelfEmployedRates()
	}

	dependentCare := t.DependentCareFSA
	if opts.FilingStatus == model.MarriedSeparate {
		dependentCare /= 2
	}

	return &model.ProjectionConfig{
		TaxYear:           t.Year,
		FilingStatus:      opts.FilingStatus,
		PeriodsPerYear:    opts.PeriodsPerYear,
		FederalBrackets:   append([]model.Bracket(nil), brackets...),
		StandardDeduction: t.StandardDeduction[opts.FilingStatus],
		StateRate:         opts.StateRate,
		Payroll:           payroll,
		Caps: model.Caps{
			SocialSecurityWageBase: t.SSWageBase,
			Retirement:             limits.RetirementLimit(t.Retirement, opts.Age),
			DependentCareFSA:       dependentCare,
			MedicalFSA:             t.MedicalFSA,
		},
		DistributionSchedule:      opts.DistributionSchedule,
		DistributionSubjectToFICA: opts.DistributionSubjectToFICA,
	}, nil
}
