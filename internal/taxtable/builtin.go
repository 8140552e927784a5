package taxtable

import (
	"sort"

	"paycheck-engine/internal/model"
	"paycheck-engine/internal/tax"
)

func schedule(rates []float64, highs ...float64) []model.Bracket {
	out := make([]model.Bracket, len(rates))
	low := 0.0
	for i, r := range rates {
		out[i] = model.Bracket{Low: low, Rate: r}
		if i < len(highs) {
			out[i].High = highs[i]
			low = highs[i]
		}
	}
	return out
}

var federalRates = []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}

var builtin = map[int]*YearTable{
	2025: {
		Year: 2025,
		Brackets: tax.Table{
			model.Single:          schedule(federalRates, 11925, 48475, 103350, 197300, 250525, 626350),
			model.MarriedJoint:    schedule(federalRates, 23850, 96950, 206700, 394600, 501050, 751600),
			model.MarriedSeparate: schedule(federalRates, 11925, 48475, 103350, 197300, 250525, 375800),
			model.HeadOfHousehold: schedule(federalRates, 17000, 64850, 103350, 197300, 250500, 626350),
		},
		StandardDeduction: map[model.FilingStatus]float64{
			model.Single:          15750,
			model.MarriedJoint:    31500,
			model.MarriedSeparate: 15750,
			model.HeadOfHousehold: 23625,
		},
		SSWageBase:       176100,
		Retirement:       model.RetirementCaps{Base: 23500, CatchUp: 7500, SuperCatchUp: 11250},
		DependentCareFSA: 5000,
		MedicalFSA:       3300,
	},
	2026: {
		Year: 2026,
		Brackets: tax.Table{
			model.Single:          schedule(federalRates, 12400, 50400, 105700, 201775, 256225, 640600),
			model.MarriedJoint:    schedule(federalRates, 24800, 100800, 211400, 403550, 512450, 768700),
			model.MarriedSeparate: schedule(federalRates, 12400, 50400, 105700, 201775, 256225, 384350),
			model.HeadOfHousehold: schedule(federalRates, 17700, 67450, 105700, 201750, 256200, 640600),
		},
		StandardDeduction: map[model.FilingStatus]float64{
			model.Single:          16100,
			model.MarriedJoint:    32200,
			model.MarriedSeparate: 16100,
			model.HeadOfHousehold: 24150,
		},
		SSWageBase:       184500,
		Retirement:       model.RetirementCaps{Base: 24500, CatchUp: 8000, SuperCatchUp: 11250},
		DependentCareFSA: 7500,
		MedicalFSA:       3400,
	},
}

// Builtin returns the compiled-in table for year.
func Builtin(year int) (*YearTable, bool) {
	t, ok := builtin[year]
	return t, ok
}

// BuiltinYears lists the compiled-in years in ascending order.
func BuiltinYears() []int {
	years := make([]int, 0, len(builtin))
	for y := range builtin {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Latest is the most recent compiled-in year.
func Latest() int {
	years := BuiltinYears()
	return years[len(years)-1]
}
