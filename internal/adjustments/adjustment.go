// Package adjustments applies named what-if edits to a plan before it is
// projected.
package adjustments

import (
	"fmt"

	json "github.com/goccy/go-json"

	"paycheck-engine/internal/model"
)

// Handler validates an adjustment against the current plan and applies it.
// Apply only runs when Validate returned no CRITICAL message.
type Handler interface {
	Validate(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage
	Apply(plan *model.Plan, adj *model.Adjustment) []model.CalculationMessage
}

func critical(code, format string, args ...any) []model.CalculationMessage {
	return []model.CalculationMessage{{
		Level:   model.LevelCritical,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}}
}

func warning(code, format string, args ...any) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func decode(adj *model.Adjustment, v any) []model.CalculationMessage {
	if len(adj.Properties) == 0 {
		return critical(model.CodeInvalidAdjustment, "%s: missing properties", adj.Name)
	}
	if err := json.Unmarshal(adj.Properties, v); err != nil {
		return critical(model.CodeInvalidAdjustment, "%s: invalid properties: %v", adj.Name, err)
	}
	return nil
}

func negative(name, field string, v float64) []model.CalculationMessage {
	if v < 0 {
		return critical(model.CodeInvalidAdjustment, "%s: %s must not be negative", name, field)
	}
	return nil
}
