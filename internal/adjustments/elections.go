package adjustments

import (
	"paycheck-engine/internal/model"
)

// Nil fields keep the plan's current election.
type setRetirementElectionProps struct {
	PreTaxRetirement *float64 `json:"pre_tax_retirement,omitempty"`
	RothRetirement   *float64 `json:"roth_retirement,omitempty"`
}

type SetRetirementElectionHandler struct{}

func (h *SetRetirementElectionHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setRetirementElectionProps
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	if props.PreTaxRetirement == nil && props.RothRetirement == nil {
		return critical(model.CodeInvalidAdjustment, "%s: no election given", adj.Name)
	}
	if props.PreTaxRetirement != nil {
		if msgs := negative(adj.Name, "pre_tax_retirement", *props.PreTaxRetirement); msgs != nil {
			return msgs
		}
	}
	if props.RothRetirement != nil {
		return negative(adj.Name, "roth_retirement", *props.RothRetirement)
	}
	return nil
}

func (h *SetRetirementElectionHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setRetirementElectionProps
	decode(adj, &props)
	if props.PreTaxRetirement != nil {
		plan.Contributions.PreTaxRetirement = *props.PreTaxRetirement
	}
	if props.RothRetirement != nil {
		plan.Contributions.RothRetirement = *props.RothRetirement
	}
	return nil
}

type SetExpensesHandler struct{}

func (h *SetExpensesHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props model.Expenses
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	if msgs := negative(adj.Name, "mortgage", props.Mortgage); msgs != nil {
		return msgs
	}
	if msgs := negative(adj.Name, "household", props.Household); msgs != nil {
		return msgs
	}
	return negative(adj.Name, "discretionary", props.Discretionary)
}

func (h *SetExpensesHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props model.Expenses
	decode(adj, &props)
	plan.Expenses = props
	return nil
}
