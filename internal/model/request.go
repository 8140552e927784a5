package model

import "encoding/json"

// ProjectionRequest asks for one taxpayer-year. Either Plan is set, or
// Config and explicit Periods are; Adjustments only apply to a Plan.
type ProjectionRequest struct {
	Scenario    string            `json:"scenario"`
	Plan        *Plan             `json:"plan,omitempty"`
	Adjustments []Adjustment      `json:"adjustments,omitempty"`
	Config      *ProjectionConfig `json:"config,omitempty"`
	Periods     []PeriodInput     `json:"periods,omitempty"`
}

// Adjustment is a named edit applied to a plan before it is projected,
// e.g. raising the salary or switching filing status for a what-if run.
type Adjustment struct {
	AdjustmentID string          `json:"adjustment_id"`
	Name         string          `json:"name"`
	Properties   json.RawMessage `json:"properties"`
}

type ComparisonRequest struct {
	Baseline     ProjectionRequest   `json:"baseline"`
	Alternatives []ProjectionRequest `json:"alternatives"`
}
