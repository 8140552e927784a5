package engine

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"paycheck-engine/internal/model"
	"paycheck-engine/internal/taxtable"
)

func newTestProcessor() *Processor {
	return NewProcessor(taxtable.NewRegistry("", 0, zap.NewNop()), 2025, zap.NewNop())
}

type fallbackTables struct{}

func (fallbackTables) Get(year int) (*taxtable.YearTable, bool, error) {
	t, ok := taxtable.Builtin(year)
	if !ok {
		return nil, false, errors.New("no table")
	}
	return t, true, nil
}

func basePlan() *model.Plan {
	return &model.Plan{
		TaxYear:      2025,
		FilingStatus: model.Single,
		Age:          45,
		PayFrequency: model.Biweekly,
		StateRate:    0.0495,
		AnnualSalary: 100000.01,
		PreTax:       model.PreTaxDeductions{HealthInsurance: 3120},
		Contributions: model.Contributions{
			PreTaxRetirement: 10000,
		},
		Expenses: model.Expenses{Mortgage: 24000, Household: 12000},
	}
}

func TestProcessPlan(t *testing.T) {
	resp := newTestProcessor().Process(&model.ProjectionRequest{
		Scenario: "baseline",
		Plan:     basePlan(),
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s (%v)", resp.CalculationMetadata.CalculationOutcome, resp.CalculationResult.Messages)
	}
	if resp.CalculationMetadata.Scenario != "baseline" {
		t.Fatalf("expected scenario baseline, got %s", resp.CalculationMetadata.Scenario)
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation id")
	}

	res := resp.CalculationResult
	if len(res.Periods) != 26 {
		t.Fatalf("expected 26 periods, got %d", len(res.Periods))
	}
	if len(res.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %v", res.Messages)
	}
	if res.Summary == nil {
		t.Fatal("expected a summary")
	}
	if math.Abs(res.Summary.TotalGrossIncome-100000.01) > 0.005 {
		t.Fatalf("expected gross 100000.01, got %v", res.Summary.TotalGrossIncome)
	}
	if res.Config == nil || res.Config.PeriodsPerYear != 26 || res.Config.Caps.SocialSecurityWageBase != 176100 {
		t.Fatalf("unexpected config %+v", res.Config)
	}
	if res.Periods[0].Date != "2025-01-03" {
		t.Fatalf("expected first pay date 2025-01-03, got %s", res.Periods[0].Date)
	}
}

func TestProcessDefaultsTaxYear(t *testing.T) {
	plan := basePlan()
	plan.TaxYear = 0

	resp := newTestProcessor().Process(&model.ProjectionRequest{Plan: plan})
	if resp.Failed() {
		t.Fatalf("unexpected failure: %v", resp.CalculationResult.Messages)
	}
	if resp.CalculationResult.Plan.TaxYear != 2025 {
		t.Fatalf("expected default year 2025, got %d", resp.CalculationResult.Plan.TaxYear)
	}
	if plan.TaxYear != 0 {
		t.Fatal("request plan must not be modified")
	}
}

func TestProcessAdjustments(t *testing.T) {
	resp := newTestProcessor().Process(&model.ProjectionRequest{
		Plan: basePlan(),
		Adjustments: []model.Adjustment{
			{AdjustmentID: "a1", Name: "apply_raise", Properties: json.RawMessage(`{"percentage": 0.10}`)},
			{AdjustmentID: "a2", Name: "set_filing_status", Properties: json.RawMessage(`{"filing_status": "married_joint"}`)},
		},
	})

	if resp.Failed() {
		t.Fatalf("unexpected failure: %v", resp.CalculationResult.Messages)
	}
	res := resp.CalculationResult
	if len(res.Adjustments) != 2 {
		t.Fatalf("expected 2 processed adjustments, got %d", len(res.Adjustments))
	}
	if math.Abs(res.Plan.AnnualSalary-110000.011) > 1e-6 {
		t.Fatalf("expected raised salary, got %v", res.Plan.AnnualSalary)
	}
	if res.Config.FilingStatus != model.MarriedJoint || res.Config.StandardDeduction != 31500 {
		t.Fatalf("expected married_joint config, got %s / %v", res.Config.FilingStatus, res.Config.StandardDeduction)
	}

	raise := res.Adjustments[0].PlanPatch
	if len(raise) != 1 || raise[0].Path != "/annual_salary" || raise[0].Delta == nil || math.Abs(*raise[0].Delta-10000.001) > 1e-6 {
		t.Fatalf("expected a salary replace with delta 10000.001, got %+v", raise)
	}
	status := res.Adjustments[1].PlanPatch
	if len(status) != 1 || status[0].Path != "/filing_status" || status[0].Value != "married_joint" || status[0].Delta != nil {
		t.Fatalf("expected a filing status replace, got %+v", status)
	}
}

func TestProcessUnknownAdjustment(t *testing.T) {
	resp := newTestProcessor().Process(&model.ProjectionRequest{
		Plan: basePlan(),
		Adjustments: []model.Adjustment{
			{AdjustmentID: "a1", Name: "set_age", Properties: json.RawMessage(`{"age": 52}`)},
			{AdjustmentID: "a2", Name: "retire_early", Properties: json.RawMessage(`{}`)},
		},
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	res := resp.CalculationResult
	if len(res.Messages) != 1 || res.Messages[0].Code != model.CodeUnknownAdjustment {
		t.Fatalf("expected UNKNOWN_ADJUSTMENT, got %v", res.Messages)
	}
	if len(res.Adjustments) != 2 {
		t.Fatalf("expected both adjustments recorded, got %d", len(res.Adjustments))
	}
	if len(res.Periods) != 0 || res.Summary != nil {
		t.Fatal("expected no results on failure")
	}
}

func TestProcessInvalidAdjustment(t *testing.T) {
	resp := newTestProcessor().Process(&model.ProjectionRequest{
		Plan: basePlan(),
		Adjustments: []model.Adjustment{
			{AdjustmentID: "a1", Name: "set_salary", Properties: json.RawMessage(`{"annual_salary": -5}`)},
		},
	})
	if !resp.Failed() {
		t.Fatal("expected FAILURE")
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != model.CodeInvalidAdjustment {
		t.Fatalf("expected INVALID_ADJUSTMENT, got %v", msgs)
	}
	if got := resp.CalculationResult.Adjustments[0].CalculationMessageIndexes; len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected message index 0, got %v", got)
	}
}

func TestProcessInvalidPlan(t *testing.T) {
	plan := basePlan()
	plan.FilingStatus = "widowed"

	resp := newTestProcessor().Process(&model.ProjectionRequest{Plan: plan})
	if !resp.Failed() {
		t.Fatal("expected FAILURE")
	}
	if resp.CalculationResult.Messages[0].Code != model.CodeInvalidConfiguration {
		t.Fatalf("expected INVALID_CONFIGURATION, got %s", resp.CalculationResult.Messages[0].Code)
	}
	if resp.CalculationResult.Messages[0].Level != model.LevelCritical {
		t.Fatalf("expected CRITICAL, got %s", resp.CalculationResult.Messages[0].Level)
	}
}

func TestProcessUnknownYear(t *testing.T) {
	plan := basePlan()
	plan.TaxYear = 1990

	resp := newTestProcessor().Process(&model.ProjectionRequest{Plan: plan})
	if !resp.Failed() {
		t.Fatal("expected FAILURE for a year without tables")
	}
}

func TestProcessExplicitPeriods(t *testing.T) {
	cfg := testConfig(12)
	resp := newTestProcessor().Process(&model.ProjectionRequest{
		Config:  cfg,
		Periods: evenPeriods(12, 4000),
	})
	if resp.Failed() {
		t.Fatalf("unexpected failure: %v", resp.CalculationResult.Messages)
	}
	if resp.CalculationResult.Summary.TotalGrossIncome != 48000 {
		t.Fatalf("expected gross 48000, got %v", resp.CalculationResult.Summary.TotalGrossIncome)
	}

	resp = newTestProcessor().Process(&model.ProjectionRequest{Config: cfg})
	if !resp.Failed() {
		t.Fatal("expected FAILURE without periods")
	}

	cfg.PeriodsPerYear = 0
	resp = newTestProcessor().Process(&model.ProjectionRequest{Config: cfg, Periods: evenPeriods(12, 4000)})
	if !resp.Failed() {
		t.Fatal("expected FAILURE for zero periods per year")
	}
}

func TestProcessTableFallbackWarning(t *testing.T) {
	p := NewProcessor(fallbackTables{}, 2025, nil)
	resp := p.Process(&model.ProjectionRequest{Plan: basePlan()})
	if resp.Failed() {
		t.Fatalf("unexpected failure: %v", resp.CalculationResult.Messages)
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) == 0 || msgs[0].Code != model.CodeTaxTableFallback || msgs[0].Level != model.LevelWarning {
		t.Fatalf("expected TAX_TABLE_FALLBACK warning, got %v", msgs)
	}
}
