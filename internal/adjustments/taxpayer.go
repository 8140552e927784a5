package adjustments

import (
	"paycheck-engine/internal/model"
)

type setFilingStatusProps struct {
	FilingStatus model.FilingStatus `json:"filing_status"`
}

type SetFilingStatusHandler struct{}

func (h *SetFilingStatusHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setFilingStatusProps
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	if !props.FilingStatus.Valid() {
		return critical(model.CodeInvalidAdjustment, "%s: unsupported filing status %q", adj.Name, props.FilingStatus)
	}
	return nil
}

func (h *SetFilingStatusHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setFilingStatusProps
	decode(adj, &props)
	plan.FilingStatus = props.FilingStatus
	return nil
}

type setAgeProps struct {
	Age int `json:"age"`
}

type SetAgeHandler struct{}

func (h *SetAgeHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setAgeProps
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	if props.Age < 0 || props.Age > 120 {
		return critical(model.CodeInvalidAdjustment, "%s: age %d out of range", adj.Name, props.Age)
	}
	return nil
}

func (h *SetAgeHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setAgeProps
	decode(adj, &props)
	plan.Age = props.Age
	return nil
}

type setStateRateProps struct {
	StateRate float64 `json:"state_rate"`
}

type SetStateRateHandler struct{}

func (h *SetStateRateHandler) Validate(_ *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setStateRateProps
	if msgs := decode(adj, &props); msgs != nil {
		return msgs
	}
	if props.StateRate < 0 || props.StateRate > 1 {
		return critical(model.CodeInvalidAdjustment, "%s: rate %v outside [0, 1]", adj.Name, props.StateRate)
	}
	return nil
}

func (h *SetStateRateHandler) Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage {
	var props setStateRateProps
	decode(adj, &props)
	plan.StateRate = props.StateRate
	return nil
}
