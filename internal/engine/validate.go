package engine

import (
	"time"

	"paycheck-engine/internal/limits"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/tax"
)

// parseDate parses "YYYY-MM-DD" without going through time.Parse.
func parseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i != 4 && i != 7 && (c < '0' || c > '9') {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		// time.Date normalizes 2025-02-31 into March.
		return time.Time{}, false
	}
	return t, true
}

func unitRate(field string, v float64) error {
	if v < 0 || v > 1 {
		return model.Invalid(field, "rate %v outside [0, 1]", v)
	}
	return nil
}

// Validate rejects a configuration before any period is projected.
func Validate(periods []model.PeriodInput, cfg *model.ProjectionConfig) error {
	if cfg == nil {
		return model.Invalid("config", "missing configuration")
	}
	if !cfg.FilingStatus.Valid() {
		return model.Invalid("filing_status", "unsupported filing status %q", string(cfg.FilingStatus))
	}
	if cfg.PeriodsPerYear <= 0 {
		return model.Invalid("periods_per_year", "must be positive, got %d", cfg.PeriodsPerYear)
	}
	if err := tax.ValidateBrackets(cfg.FederalBrackets); err != nil {
		return err
	}
	if cfg.StandardDeduction < 0 {
		return model.Invalid("standard_deduction", "negative amount %v", cfg.StandardDeduction)
	}
	if err := unitRate("state_rate", cfg.StateRate); err != nil {
		return err
	}

	pr := cfg.Payroll
	if err := unitRate("payroll.social_security", pr.SocialSecurity); err != nil {
		return err
	}
	if err := unitRate("payroll.medicare", pr.Medicare); err != nil {
		return err
	}
	if err := unitRate("payroll.additional_medicare", pr.AdditionalMedicare); err != nil {
		return err
	}
	if pr.AdditionalMedicareThreshold < 0 {
		return model.Invalid("payroll.additional_medicare_threshold", "negative amount %v", pr.AdditionalMedicareThreshold)
	}
	if pr.NetEarningsFactor <= 0 || pr.NetEarningsFactor > 1 {
		return model.Invalid("payroll.net_earnings_factor", "factor %v outside (0, 1]", pr.NetEarningsFactor)
	}
	if err := limits.ValidateCaps(cfg.Caps); err != nil {
		return err
	}

	for _, idx := range cfg.DistributionSchedule {
		if idx < 1 {
			return model.Invalid("distribution_schedule", "period index %d must be at least 1", idx)
		}
	}

	var prev time.Time
	for i, p := range periods {
		if p.Index != i+1 {
			return model.Invalid("periods", "period %d has index %d, want %d", i+1, p.Index, i+1)
		}
		if p.Date != "" {
			d, ok := parseDate(p.Date)
			if !ok {
				return model.Invalid("periods", "period %d has invalid date %q", p.Index, p.Date)
			}
			if d.Before(prev) {
				return model.Invalid("periods", "period %d dated %s before the previous period", p.Index, p.Date)
			}
			prev = d
		}
		if err := validateAmounts(p); err != nil {
			return err
		}
		if p.Distribution > 0 && !cfg.IsDistributionPeriod(p.Index) {
			return model.Invalid("periods", "period %d carries a distribution but is not on the schedule", p.Index)
		}
	}
	return nil
}

func validateAmounts(p model.PeriodInput) error {
	for _, a := range []struct {
		field string
		v     float64
	}{
		{"base_pay", p.BasePay},
		{"distribution", p.Distribution},
		{"pre_tax.health_insurance", p.PreTax.HealthInsurance},
		{"pre_tax.dental_vision", p.PreTax.DentalVision},
		{"pre_tax.dependent_care_fsa", p.PreTax.DependentCareFSA},
		{"pre_tax.medical_fsa", p.PreTax.MedicalFSA},
		{"contributions.pre_tax_retirement", p.Contributions.PreTaxRetirement},
		{"contributions.roth_retirement", p.Contributions.RothRetirement},
		{"expenses.mortgage", p.Expenses.Mortgage},
		{"expenses.household", p.Expenses.Household},
		{"expenses.discretionary", p.Expenses.Discretionary},
	} {
		if a.v < 0 {
			return model.Invalid("periods", "period %d: negative %s %v", p.Index, a.field, a.v)
		}
	}
	return nil
}
