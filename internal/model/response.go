package model

import "paycheck-engine/internal/jsonpatch"

type ProjectionResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   ProjectionResult    `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	Scenario               string `json:"scenario"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ProjectionResult struct {
	Messages    []CalculationMessage  `json:"messages"`
	Adjustments []ProcessedAdjustment `json:"adjustments,omitempty"`
	Plan        *Plan                 `json:"plan,omitempty"`
	Config      *ProjectionConfig     `json:"config,omitempty"`
	Periods     []PeriodResult        `json:"periods"`
	Summary     *YearSummary          `json:"summary,omitempty"`
}

// ProcessedAdjustment echoes an adjustment with the messages it raised and
// the patch it made to the plan.
type ProcessedAdjustment struct {
	Adjustment                Adjustment            `json:"adjustment"`
	CalculationMessageIndexes []int                 `json:"calculation_message_indexes,omitempty"`
	PlanPatch                 []jsonpatch.Operation `json:"plan_patch,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// Failed reports whether the response carries a CRITICAL message.
func (r *ProjectionResponse) Failed() bool {
	return r.CalculationMetadata.CalculationOutcome == OutcomeFailure
}
