// Package engine projects a year of pay periods into cash-flow records and
// reduces them into a year summary.
package engine

import (
	"fmt"
	"math"

	"paycheck-engine/internal/limits"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/tax"
)

type Projection struct {
	Periods  []model.PeriodResult       `json:"periods"`
	Messages []model.CalculationMessage `json:"messages"`
}

type projector struct {
	cfg       *model.ProjectionConfig
	ppy       float64
	federal   tax.Table
	state     []model.Bracket
	tracker   *limits.Tracker
	warned    map[limits.Kind]bool
	payWarned bool
	msgs      []model.CalculationMessage
}

// Project walks periods in order and returns one result per period. The
// configuration is validated first; an invalid one yields no results.
//
// Withholding annualizes the period's taxable wages, runs them through the
// yearly schedule, and divides back by the periods per year. This is an
// approximation of payroll withholding tables, kept on purpose.
func Project(periods []model.PeriodInput, cfg *model.ProjectionConfig) (*Projection, error) {
	if err := Validate(periods, cfg); err != nil {
		return nil, err
	}
	tracker, err := limits.NewTracker(cfg.Caps)
	if err != nil {
		return nil, err
	}

	p := &projector{
		cfg:     cfg,
		ppy:     float64(cfg.PeriodsPerYear),
		federal: tax.Table{cfg.FilingStatus: cfg.FederalBrackets},
		state:   tax.Flat(cfg.StateRate),
		tracker: tracker,
		warned:  make(map[limits.Kind]bool),
	}

	results := make([]model.PeriodResult, 0, len(periods))
	for _, in := range periods {
		r, err := p.period(in)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", in.Index, err)
		}
		results = append(results, r)
	}

	return &Projection{Periods: results, Messages: p.msgs}, nil
}

func (p *projector) period(in model.PeriodInput) (model.PeriodResult, error) {
	cfg := p.cfg
	r := model.PeriodResult{
		Index:                in.Index,
		Date:                 in.Date,
		BasePay:              in.BasePay,
		IsDistributionPeriod: cfg.IsDistributionPeriod(in.Index),
	}
	if r.IsDistributionPeriod {
		r.Distribution = in.Distribution
	}
	r.GrossPay = r.BasePay + r.Distribution
	available := r.GrossPay

	// Section 125 deductions, FSAs clipped at their annual caps.
	r.PreTax.HealthInsurance = take(&available, in.PreTax.HealthInsurance)
	r.PreTax.DentalVision = take(&available, in.PreTax.DentalVision)
	var err error
	if r.PreTax.DependentCareFSA, err = p.allow(limits.DependentCareFSA, in.Index, in.PreTax.DependentCareFSA, &available); err != nil {
		return r, err
	}
	if r.PreTax.MedicalFSA, err = p.allow(limits.MedicalFSA, in.Index, in.PreTax.MedicalFSA, &available); err != nil {
		return r, err
	}
	section125 := r.PreTax.Total()

	// FICA wages exclude Section 125 deductions but not elective deferrals,
	// so FICA is settled before the deferral is sized.
	fica := r.GrossPay - section125
	if r.IsDistributionPeriod && !cfg.DistributionSubjectToFICA {
		fica -= r.Distribution
	}
	r.FICAWages = cents(math.Max(0, fica) * cfg.Payroll.NetEarningsFactor)

	ssWages, err := p.tracker.Allow(limits.SocialSecurityWages, r.FICAWages)
	if err != nil {
		return r, err
	}
	r.SocialSecurityTax = cents(ssWages * cfg.Payroll.SocialSecurity)
	p.tracker.RecordSocialSecurityTax(r.SocialSecurityTax)

	before, after := p.tracker.AddMedicareWages(r.FICAWages)
	r.MedicareTax = cents(r.FICAWages * cfg.Payroll.Medicare)
	if over := after - math.Max(before, cfg.Payroll.AdditionalMedicareThreshold); over > 0 {
		r.AdditionalMedicareTax = cents(over * cfg.Payroll.AdditionalMedicare)
	}
	available -= r.SocialSecurityTax + r.MedicareTax + r.AdditionalMedicareTax

	elected := in.Contributions.PreTaxRetirement
	room := math.Min(elected, p.tracker.Remaining(limits.Retirement))
	payable, err := p.maxDeferral(r.GrossPay-section125, available, room)
	if err != nil {
		return r, err
	}
	bound := payable
	if r.Contributions.PreTaxRetirement, err = p.allow(limits.Retirement, in.Index, elected, &bound); err != nil {
		return r, err
	}
	available -= r.Contributions.PreTaxRetirement
	if toCents(payable) < toCents(room) && !p.payWarned {
		p.payWarned = true
		p.msgs = append(p.msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeRetirementExceedsPay,
			Message: fmt.Sprintf("%s election reduced from %.2f to %.2f to keep net pay from going negative", limits.Retirement, elected, r.Contributions.PreTaxRetirement),
			Period:  in.Index,
		})
	}

	r.FederalTaxableWages = math.Max(0, r.GrossPay-section125-r.Contributions.PreTaxRetirement)
	r.StateTaxableWages = r.FederalTaxableWages
	if r.FederalWithholding, r.StateWithholding, err = p.withholding(r.FederalTaxableWages); err != nil {
		return r, err
	}
	available -= r.FederalWithholding + r.StateWithholding

	// Roth shares the elective-deferral limit and comes out of after-tax pay.
	if r.Contributions.RothRetirement, err = p.allow(limits.Retirement, in.Index, in.Contributions.RothRetirement, &available); err != nil {
		return r, err
	}

	r.NetPay = cents(available)
	r.Expenses = in.Expenses
	if left := cents(r.NetPay - in.Expenses.Total()); left >= 0 {
		r.Investable = left
	} else {
		r.Shortfall = -left
		p.msgs = append(p.msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeNegativeCashFlow,
			Message: fmt.Sprintf("fixed expenses exceed net pay by %.2f", r.Shortfall),
			Period:  in.Index,
		})
	}

	r.SSCapReached = p.tracker.Reached(limits.SocialSecurityWages)
	r.RetirementCapReached = p.tracker.Reached(limits.Retirement)
	r.DependentCareFSACapReached = p.tracker.Reached(limits.DependentCareFSA)
	r.MedicalFSACapReached = p.tracker.Reached(limits.MedicalFSA)
	r.SSWageBaseRemaining = p.tracker.Remaining(limits.SocialSecurityWages)
	return r, nil
}

// withholding returns the federal and state withholding on one period's
// taxable wages.
func (p *projector) withholding(taxable float64) (federal, state float64, err error) {
	annual := math.Max(0, taxable*p.ppy-p.cfg.StandardDeduction)
	fed, err := tax.ComputeTax(annual, p.federal, p.cfg.FilingStatus)
	if err != nil {
		return 0, 0, err
	}
	return cents(fed / p.ppy), cents(tax.Evaluate(taxable*p.ppy, p.state) / p.ppy), nil
}

// maxDeferral is the largest pre-tax deferral, at most room, that leaves
// withholding covered by the pay still available. wages are the period's
// wages before the deferral. Withholding falls by less than a dollar for
// each dollar deferred, so the search over cents is monotone.
func (p *projector) maxDeferral(wages, available, room float64) (float64, error) {
	fits := func(c int64) (bool, error) {
		fed, st, err := p.withholding(wages - float64(c)/100)
		if err != nil {
			return false, err
		}
		return toCents(available)-c-toCents(fed)-toCents(st) >= 0, nil
	}

	hi := toCents(math.Min(room, math.Max(0, available)))
	if ok, err := fits(hi); ok || err != nil {
		return float64(hi) / 100, err
	}
	lo := int64(0)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		ok, err := fits(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return float64(lo) / 100, nil
}

var clipCodes = map[limits.Kind]string{
	limits.Retirement:       model.CodeRetirementLimitReached,
	limits.DependentCareFSA: model.CodeDependentCareFSALimit,
	limits.MedicalFSA:       model.CodeMedicalFSALimit,
}

// allow clips an election to the pay still available and to the annual cap,
// and warns the first time the cap reduces an election.
func (p *projector) allow(kind limits.Kind, period int, elected float64, available *float64) (float64, error) {
	got, err := p.tracker.Allow(kind, math.Min(elected, math.Max(0, *available)))
	if err != nil {
		return 0, err
	}
	*available -= got
	if got < elected && p.tracker.Reached(kind) && !p.warned[kind] {
		p.warned[kind] = true
		p.msgs = append(p.msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    clipCodes[kind],
			Message: fmt.Sprintf("%s election reduced from %.2f to %.2f by the annual limit", kind, elected, got),
			Period:  period,
		})
	}
	return got, nil
}

func take(available *float64, amount float64) float64 {
	got := math.Min(amount, math.Max(0, *available))
	*available -= got
	return got
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
