// Package tax evaluates marginal bracket schedules.
package tax

import (
	"paycheck-engine/internal/model"
)

// Table holds one bracket schedule per filing status.
type Table map[model.FilingStatus][]model.Bracket

// Evaluate returns the tax owed on income under brackets. Each bracket taxes
// the part of income inside [Low, High); the open top bracket taxes
// everything above its Low.
func Evaluate(income float64, brackets []model.Bracket) float64 {
	if income <= 0 {
		return 0
	}
	var owed float64
	for _, b := range brackets {
		if income <= b.Low {
			break
		}
		upper := income
		if !b.OpenEnded() && b.High < upper {
			upper = b.High
		}
		owed += (upper - b.Low) * b.Rate
	}
	return owed
}

// ComputeTax looks up the schedule for status and evaluates income on it.
func ComputeTax(income float64, table Table, status model.FilingStatus) (float64, error) {
	if !status.Valid() {
		return 0, model.Invalid("filing_status", "unsupported filing status %q", string(status))
	}
	brackets, ok := table[status]
	if !ok {
		return 0, model.Invalid("filing_status", "no brackets for filing status %q", string(status))
	}
	if err := ValidateBrackets(brackets); err != nil {
		return 0, err
	}
	return Evaluate(income, brackets), nil
}

// Flat is a single open bracket at rate, so a flat state tax goes through
// the same evaluation as the federal schedule.
func Flat(rate float64) []model.Bracket {
	return []model.Bracket{{Low: 0, Rate: rate}}
}

// MarginalRate is the rate of the bracket holding the next dollar of income.
// Income sitting exactly on a threshold belongs to the higher bracket.
func MarginalRate(income float64, brackets []model.Bracket) float64 {
	if len(brackets) == 0 {
		return 0
	}
	rate := brackets[0].Rate
	for _, b := range brackets {
		if income < b.Low {
			break
		}
		rate = b.Rate
	}
	return rate
}

// ValidateBrackets rejects schedules Evaluate cannot tax consistently.
func ValidateBrackets(brackets []model.Bracket) error {
	if len(brackets) == 0 {
		return model.Invalid("brackets", "bracket table is empty")
	}
	if brackets[0].Low != 0 {
		return model.Invalid("brackets[0].low", "first bracket must start at 0, got %v", brackets[0].Low)
	}
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return model.Invalid("brackets", "bracket %d rate %v outside [0, 1]", i, b.Rate)
		}
		last := i == len(brackets)-1
		if b.OpenEnded() {
			if !last {
				return model.Invalid("brackets", "open-ended bracket %d is not the last one", i)
			}
			continue
		}
		if b.High <= b.Low {
			return model.Invalid("brackets", "bracket %d high %v not above low %v", i, b.High, b.Low)
		}
		if !last && brackets[i+1].Low != b.High {
			return model.Invalid("brackets", "bracket %d ends at %v but bracket %d starts at %v", i, b.High, i+1, brackets[i+1].Low)
		}
	}
	return nil
}
