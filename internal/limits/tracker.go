// Package limits enforces the annual payroll caps across a year's periods.
package limits

import (
	"fmt"

	"paycheck-engine/internal/model"
)

type Kind int

const (
	SocialSecurityWages Kind = iota
	Retirement
	DependentCareFSA
	MedicalFSA
)

func (k Kind) String() string {
	switch k {
	case SocialSecurityWages:
		return "social_security_wages"
	case Retirement:
		return "retirement"
	case DependentCareFSA:
		return "dependent_care_fsa"
	case MedicalFSA:
		return "medical_fsa"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// RunningTotals are the year-to-date amounts of one taxpayer. Every field is
// non-decreasing within a year and zero at its start.
type RunningTotals struct {
	SocialSecurityWages float64 `json:"social_security_wages"`
	SocialSecurityTax   float64 `json:"social_security_tax"`
	MedicareWages       float64 `json:"medicare_wages"`
	Retirement          float64 `json:"retirement"`
	DependentCareFSA    float64 `json:"dependent_care_fsa"`
	MedicalFSA          float64 `json:"medical_fsa"`
}

// Tracker clips proposed amounts against annual caps. It is not safe for
// concurrent use; each projection owns its own.
type Tracker struct {
	caps   model.Caps
	totals RunningTotals
}

func NewTracker(caps model.Caps) (*Tracker, error) {
	if err := ValidateCaps(caps); err != nil {
		return nil, err
	}
	return &Tracker{caps: caps}, nil
}

func ValidateCaps(caps model.Caps) error {
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"caps.social_security_wage_base", caps.SocialSecurityWageBase},
		{"caps.retirement", caps.Retirement},
		{"caps.dependent_care_fsa", caps.DependentCareFSA},
		{"caps.medical_fsa", caps.MedicalFSA},
	} {
		if c.v < 0 {
			return model.Invalid(c.field, "negative cap %v", c.v)
		}
	}
	return nil
}

// Allow returns the part of proposed that still fits under the cap for kind
// and adds it to the running total. A proposal that closes the gap leaves
// the total exactly on the cap.
func (t *Tracker) Allow(kind Kind, proposed float64) (float64, error) {
	if proposed < 0 {
		return 0, model.Invalid(kind.String(), "negative proposed amount %v", proposed)
	}
	total, limit := t.slot(kind)
	if total == nil {
		return 0, model.Invalid(kind.String(), "untracked limit")
	}
	room := limit - *total
	if room <= 0 {
		return 0, nil
	}
	if proposed >= room {
		*total = limit
		return room, nil
	}
	*total += proposed
	return proposed, nil
}

func (t *Tracker) Remaining(kind Kind) float64 {
	total, limit := t.slot(kind)
	if total == nil || *total >= limit {
		return 0
	}
	return limit - *total
}

// Reached reports whether the cap for kind has no room left.
func (t *Tracker) Reached(kind Kind) bool {
	total, limit := t.slot(kind)
	return total != nil && *total >= limit
}

// AddMedicareWages records uncapped Medicare wages and returns the
// year-to-date total before and after.
func (t *Tracker) AddMedicareWages(wages float64) (before, after float64) {
	before = t.totals.MedicareWages
	if wages > 0 {
		t.totals.MedicareWages += wages
	}
	return before, t.totals.MedicareWages
}

func (t *Tracker) RecordSocialSecurityTax(amount float64) {
	if amount > 0 {
		t.totals.SocialSecurityTax += amount
	}
}

func (t *Tracker) Totals() RunningTotals {
	return t.totals
}

// Reset starts a new year.
func (t *Tracker) Reset() {
	t.totals = RunningTotals{}
}

func (t *Tracker) slot(kind Kind) (*float64, float64) {
	switch kind {
	case SocialSecurityWages:
		return &t.totals.SocialSecurityWages, t.caps.SocialSecurityWageBase
	case Retirement:
		return &t.totals.Retirement, t.caps.Retirement
	case DependentCareFSA:
		return &t.totals.DependentCareFSA, t.caps.DependentCareFSA
	case MedicalFSA:
		return &t.totals.MedicalFSA, t.caps.MedicalFSA
	}
	return nil, 0
}

// RetirementLimit is the elective-deferral limit for a participant of age:
// the base limit, plus the catch-up from 50, with the larger super catch-up
// replacing it from 60 through 63.
func RetirementLimit(caps model.RetirementCaps, age int) float64 {
	switch {
	case age >= 60 && age <= 63:
		return caps.Base + caps.SuperCatchUp
	case age >= 50:
		return caps.Base + caps.CatchUp
	}
	return caps.Base
}
