// Package growth projects how the investable proceeds of a year compound
// over later years.
package growth

import (
	"math"

	"paycheck-engine/internal/model"
)

type DividendParams struct {
	StartingBalance    float64 `json:"starting_balance"`
	AnnualContribution float64 `json:"annual_contribution"`
	Years              int     `json:"years"`
	PriceGrowth        float64 `json:"price_growth"`
	DividendYield      float64 `json:"dividend_yield"`
	DividendTaxRate    float64 `json:"dividend_tax_rate"`
	// Reinvest buys more shares with after-tax dividends (DRIP) instead
	// of paying them out.
	Reinvest bool `json:"reinvest"`
}

type DividendYear struct {
	Year         int     `json:"year"`
	StartBalance float64 `json:"start_balance"`
	Contribution float64 `json:"contribution"`
	Appreciation float64 `json:"appreciation"`
	Dividends    float64 `json:"dividends"`
	DividendTax  float64 `json:"dividend_tax"`
	Reinvested   float64 `json:"reinvested"`
	CashPaid     float64 `json:"cash_paid"`
	EndBalance   float64 `json:"end_balance"`
}

// ProjectDividends grows a balance year by year. Contributions land at the
// start of each year; appreciation and dividends are earned on the
// resulting balance.
func ProjectDividends(p DividendParams) ([]DividendYear, error) {
	switch {
	case p.Years <= 0:
		return nil, model.Invalid("years", "must be positive, got %d", p.Years)
	case p.StartingBalance < 0 || p.AnnualContribution < 0:
		return nil, model.Invalid("balance", "starting balance and contribution must not be negative")
	case p.DividendYield < 0:
		return nil, model.Invalid("dividend_yield", "negative yield %v", p.DividendYield)
	case p.DividendTaxRate < 0 || p.DividendTaxRate > 1:
		return nil, model.Invalid("dividend_tax_rate", "rate %v outside [0, 1]", p.DividendTaxRate)
	case p.PriceGrowth <= -1:
		return nil, model.Invalid("price_growth", "growth %v wipes out the balance", p.PriceGrowth)
	}

	years := make([]DividendYear, 0, p.Years)
	balance := p.StartingBalance
	for y := 1; y <= p.Years; y++ {
		row := DividendYear{Year: y, StartBalance: round2(balance), Contribution: p.AnnualContribution}
		balance += p.AnnualContribution

		row.Appreciation = balance * p.PriceGrowth
		row.Dividends = balance * p.DividendYield
		row.DividendTax = row.Dividends * p.DividendTaxRate
		net := row.Dividends - row.DividendTax

		balance += row.Appreciation
		if p.Reinvest {
			row.Reinvested = net
			balance += net
		} else {
			row.CashPaid = net
		}
		row.EndBalance = balance

		row.Appreciation = round2(row.Appreciation)
		row.Dividends = round2(row.Dividends)
		row.DividendTax = round2(row.DividendTax)
		row.Reinvested = round2(row.Reinvested)
		row.CashPaid = round2(row.CashPaid)
		row.EndBalance = round2(row.EndBalance)
		years = append(years, row)
	}
	return years, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
