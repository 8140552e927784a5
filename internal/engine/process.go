package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"paycheck-engine/internal/adjustments"
	"paycheck-engine/internal/jsonpatch"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/schedule"
	"paycheck-engine/internal/taxtable"
)

// TableSource resolves the federal table of a tax year.
type TableSource interface {
	Get(year int) (table *taxtable.YearTable, fallback bool, err error)
}

// Processor turns requests into responses. It holds no per-request state
// and may be shared between goroutines.
type Processor struct {
	tables      TableSource
	defaultYear int
	logger      *zap.Logger
}

func NewProcessor(tables TableSource, defaultYear int, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultYear == 0 {
		defaultYear = taxtable.Latest()
	}
	return &Processor{tables: tables, defaultYear: defaultYear, logger: logger}
}

type messages struct {
	all         []model.CalculationMessage
	hasCritical bool
}

func (m *messages) add(msg model.CalculationMessage) int {
	msg.ID = len(m.all)
	m.all = append(m.all, msg)
	if msg.Level == model.LevelCritical {
		m.hasCritical = true
	}
	return msg.ID
}

func (m *messages) fail(err error) {
	m.add(model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeInvalidConfiguration,
		Message: err.Error(),
	})
}

func (p *Processor) Process(req *model.ProjectionRequest) *model.ProjectionResponse {
	start := time.Now()

	msgs := &messages{}
	result := model.ProjectionResult{Periods: []model.PeriodResult{}}

	if cfg, periods, ok := p.prepare(req, &result, msgs); ok {
		proj, err := Project(periods, cfg)
		if err != nil {
			msgs.fail(err)
		} else {
			for _, m := range proj.Messages {
				msgs.add(m)
			}
			summary := Summarize(proj.Periods, cfg)
			result.Periods = proj.Periods
			result.Summary = &summary
		}
	}

	outcome := model.OutcomeSuccess
	if msgs.hasCritical {
		outcome = model.OutcomeFailure
		result.Periods = []model.PeriodResult{}
		result.Summary = nil
	}
	result.Messages = msgs.all
	if result.Messages == nil {
		result.Messages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()
	id := uuid.New().String()

	p.logger.Debug("projection processed",
		zap.String("calculation_id", id),
		zap.String("scenario", req.Scenario),
		zap.String("outcome", outcome),
		zap.Int("periods", len(result.Periods)),
		zap.Duration("elapsed", elapsed))

	return &model.ProjectionResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          id,
			Scenario:               req.Scenario,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// prepare resolves the configuration and periods of req. Explicit periods
// are projected as given; a plan is adjusted, then spread over its pay
// calendar using the table of its tax year.
func (p *Processor) prepare(req *model.ProjectionRequest, result *model.ProjectionResult, msgs *messages) (*model.ProjectionConfig, []model.PeriodInput, bool) {
	if req.Plan == nil {
		switch {
		case req.Config == nil || len(req.Periods) == 0:
			msgs.fail(model.Invalid("plan", "request needs a plan, or a config with explicit periods"))
			return nil, nil, false
		case len(req.Adjustments) > 0:
			msgs.fail(model.Invalid("adjustments", "adjustments require a plan"))
			return nil, nil, false
		}
		result.Config = req.Config
		return req.Config, req.Periods, true
	}

	plan := req.Plan.Clone()
	if plan.TaxYear == 0 {
		plan.TaxYear = p.defaultYear
	}
	result.Plan = plan

	for _, adj := range req.Adjustments {
		processed := model.ProcessedAdjustment{Adjustment: adj}

		handler, ok := adjustments.Get(adj.Name)
		if !ok {
			id := msgs.add(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownAdjustment,
				Message: fmt.Sprintf("Unknown adjustment: %s", adj.Name),
			})
			processed.CalculationMessageIndexes = []int{id}
			result.Adjustments = append(result.Adjustments, processed)
			return nil, nil, false
		}

		for _, m := range handler.Validate(plan, &adj) {
			processed.CalculationMessageIndexes = append(processed.CalculationMessageIndexes, msgs.add(m))
		}
		if !msgs.hasCritical {
			before := plan.Clone()
			for _, m := range handler.Apply(plan, &adj) {
				processed.CalculationMessageIndexes = append(processed.CalculationMessageIndexes, msgs.add(m))
			}
			patch, err := jsonpatch.DiffValues(before, plan)
			if err != nil {
				msgs.fail(fmt.Errorf("diff plan after %s: %w", adj.Name, err))
				result.Adjustments = append(result.Adjustments, processed)
				return nil, nil, false
			}
			processed.PlanPatch = patch
		}
		result.Adjustments = append(result.Adjustments, processed)
		if msgs.hasCritical {
			return nil, nil, false
		}
	}

	table, fallback, err := p.tables.Get(plan.TaxYear)
	if err != nil {
		msgs.fail(err)
		return nil, nil, false
	}
	if fallback {
		msgs.add(model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeTaxTableFallback,
			Message: fmt.Sprintf("tax table service unavailable, using built-in %d table", plan.TaxYear),
		})
	}

	periods, distributions, err := schedule.Build(plan)
	if err != nil {
		msgs.fail(err)
		return nil, nil, false
	}
	ppy, _ := plan.PayFrequency.PeriodsPerYear()

	cfg, err := table.Config(taxtable.ConfigOptions{
		FilingStatus:              plan.FilingStatus,
		Age:                       plan.Age,
		StateRate:                 plan.StateRate,
		PeriodsPerYear:            ppy,
		SelfEmployed:              plan.SelfEmployed,
		DistributionSchedule:      distributions,
		DistributionSubjectToFICA: plan.DistributionSubjectToFICA,
	})
	if err != nil {
		msgs.fail(err)
		return nil, nil, false
	}
	result.Config = cfg
	return cfg, periods, true
}
