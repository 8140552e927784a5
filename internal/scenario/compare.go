package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"paycheck-engine/internal/jsonpatch"
	"paycheck-engine/internal/model"
)

// Processor runs a single projection request.
type Processor interface {
	Process(req *model.ProjectionRequest) *model.ProjectionResponse
}

type Comparison struct {
	Scenario string                     `json:"scenario"`
	Outcome  string                     `json:"outcome"`
	Messages []model.CalculationMessage `json:"messages"`
	Summary  *model.YearSummary         `json:"summary,omitempty"`
	// Patch turns the baseline summary into this one; Revert goes back.
	Patch  []jsonpatch.Operation `json:"patch,omitempty"`
	Revert []jsonpatch.Operation `json:"revert,omitempty"`
}

type Report struct {
	Baseline     *model.ProjectionResponse `json:"baseline"`
	Alternatives []Comparison              `json:"alternatives"`
}

// Compare projects the baseline and every alternative concurrently, each
// run with its own running totals, and diffs each alternative's summary
// against the baseline's. A failed baseline is an error; a failed
// alternative is reported with its messages and no patch.
func Compare(ctx context.Context, p Processor, baseline model.ProjectionRequest, alternatives []model.ProjectionRequest) (*Report, error) {
	responses := make([]*model.ProjectionResponse, len(alternatives)+1)
	requests := append([]model.ProjectionRequest{baseline}, alternatives...)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			responses[i] = p.Process(&requests[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	base := responses[0]
	if base.Failed() {
		return nil, fmt.Errorf("%w: baseline %q failed: %s",
			model.ErrInvalidConfiguration, baseline.Scenario, firstCritical(base.CalculationResult.Messages))
	}

	report := &Report{Baseline: base, Alternatives: make([]Comparison, 0, len(alternatives))}
	for i, resp := range responses[1:] {
		c := Comparison{
			Scenario: alternatives[i].Scenario,
			Outcome:  resp.CalculationMetadata.CalculationOutcome,
			Messages: resp.CalculationResult.Messages,
			Summary:  resp.CalculationResult.Summary,
		}
		if !resp.Failed() {
			fwd, bwd, err := jsonpatch.DiffValuesBoth(base.CalculationResult.Summary, resp.CalculationResult.Summary)
			if err != nil {
				return nil, fmt.Errorf("diff %q: %w", c.Scenario, err)
			}
			c.Patch, c.Revert = fwd, bwd
		}
		report.Alternatives = append(report.Alternatives, c)
	}
	return report, nil
}

func firstCritical(msgs []model.CalculationMessage) string {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return m.Message
		}
	}
	return "unknown error"
}
