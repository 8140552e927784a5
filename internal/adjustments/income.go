package adjustments

import (
	"paycheck-engine/internal/model"
)

type setSalaryProps struct {
	AnnualSalary float64 `json:"annual_salary"`
	SelfEmployed *bool   `json:"self_employed,omitempty"`
}

type SetSalaryHandler struct{}

func (h *SetSalaryHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setSalaryProps
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	return negative(adj.Name, "annual_salary", props.AnnualSalary)
}

func (h *SetSalaryHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setSalaryProps
	decode(adj, &props)
	plan.AnnualSalary = props.AnnualSalary
	if props.SelfEmployed != nil {
		plan.SelfEmployed = *props.SelfEmployed
	}
	return nil
}

type applyRaiseProps struct {
	Percentage float64 `json:"percentage"`
}

// ApplyRaiseHandler scales the salary by (1 + percentage). A cut below zero
// clamps the salary to zero with a warning.
type ApplyRaiseHandler struct{}

func (h *ApplyRaiseHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props applyRaiseProps
	return decode(adj, &props)
}

func (h *ApplyRaiseHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props applyRaiseProps
	decode(adj, &props)

	salary := plan.AnnualSalary * (1 + props.Percentage)
	if salary < 0 {
		plan.AnnualSalary = 0
		return []model.CalculationMessage{
			warning("NEGATIVE_SALARY_CLAMPED", "salary cut of %.2f%% clamped to 0", props.Percentage*100),
		}
	}
	plan.AnnualSalary = salary
	return nil
}

type setDistributionProps struct {
	AnnualDistribution float64                     `json:"annual_distribution"`
	Frequency          model.DistributionFrequency `json:"frequency"`
	SubjectToFICA      *bool                       `json:"subject_to_fica,omitempty"`
}

type SetDistributionHandler struct{}

func (h *SetDistributionHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setDistributionProps
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	if !props.Frequency.Valid() {
		return critical(model.CodeInvalidAdjustment, "%s: unsupported frequency %q", adj.Name, props.Frequency)
	}
	return negative(adj.Name, "annual_distribution", props.AnnualDistribution)
}

func (h *SetDistributionHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setDistributionProps
	decode(adj, &props)

	plan.AnnualDistribution = props.AnnualDistribution
	plan.DistributionFrequency = props.Frequency
	if props.SubjectToFICA != nil {
		plan.DistributionSubjectToFICA = *props.SubjectToFICA
	}

	var msgs []model.CalculationMessage
	if props.AnnualDistribution > 0 && (props.Frequency == "" || props.Frequency == model.DistributionNone) {
		msgs = append(msgs, warning("DISTRIBUTION_NOT_SCHEDULED",
			"distribution of %.2f has no schedule and will not be paid", props.AnnualDistribution))
	}
	return msgs
}
