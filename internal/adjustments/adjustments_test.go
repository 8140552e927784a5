package adjustments

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paycheck-engine/internal/model"
)

func run(t *testing.T, plan *model.Plan, name, props string) []model.CalculationMessage {
	t.Helper()
	h, ok := Get(name)
	require.True(t, ok, "adjustment %s not registered", name)
	adj := &model.Adjustment{AdjustmentID: "x", Name: name, Properties: json.RawMessage(props)}
	msgs := h.Validate(plan, adj)
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return msgs
		}
	}
	return append(msgs, h.Apply(plan, adj)...)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "apply_raise")
	assert.IsIncreasing(t, names)
	_, ok := Get("nope")
	assert.False(t, ok)
}

func TestApplyRaise(t *testing.T) {
	plan := &model.Plan{AnnualSalary: 100000}
	assert.Empty(t, run(t, plan, "apply_raise", `{"percentage": 0.05}`))
	assert.InDelta(t, 105000, plan.AnnualSalary, 1e-9)

	msgs := run(t, plan, "apply_raise", `{"percentage": -1.5}`)
	require.Len(t, msgs, 1)
	assert.Equal(t, "NEGATIVE_SALARY_CLAMPED", msgs[0].Code)
	assert.Equal(t, model.LevelWarning, msgs[0].Level)
	assert.Zero(t, plan.AnnualSalary)
}

func TestSetSalary(t *testing.T) {
	plan := &model.Plan{AnnualSalary: 1}
	assert.Empty(t, run(t, plan, "set_salary", `{"annual_salary": 90000, "self_employed": true}`))
	assert.Equal(t, 90000.0, plan.AnnualSalary)
	assert.True(t, plan.SelfEmployed)

	msgs := run(t, plan, "set_salary", `{"annual_salary": -1}`)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.CodeInvalidAdjustment, msgs[0].Code)
	assert.Equal(t, 90000.0, plan.AnnualSalary)
}

func TestInvalidProperties(t *testing.T) {
	plan := &model.Plan{}
	for _, name := range Names() {
		msgs := run(t, plan, name, `{"oops": `)
		require.NotEmpty(t, msgs, name)
		assert.Equal(t, model.LevelCritical, msgs[0].Level, name)
	}
	msgs := run(t, plan, "set_age", ``)
	assert.Equal(t, model.CodeInvalidAdjustment, msgs[0].Code)
}

func TestTaxpayerAdjustments(t *testing.T) {
	plan := &model.Plan{FilingStatus: model.Single}

	assert.Empty(t, run(t, plan, "set_filing_status", `{"filing_status": "head_of_household"}`))
	assert.Equal(t, model.HeadOfHousehold, plan.FilingStatus)
	assert.NotEmpty(t, run(t, plan, "set_filing_status", `{"filing_status": "widowed"}`))

	assert.Empty(t, run(t, plan, "set_age", `{"age": 61}`))
	assert.Equal(t, 61, plan.Age)
	assert.NotEmpty(t, run(t, plan, "set_age", `{"age": 200}`))

	assert.Empty(t, run(t, plan, "set_state_rate", `{"state_rate": 0.0307}`))
	assert.Equal(t, 0.0307, plan.StateRate)
	assert.NotEmpty(t, run(t, plan, "set_state_rate", `{"state_rate": 1.2}`))
}

func TestSetRetirementElection(t *testing.T) {
	plan := &model.Plan{Contributions: model.Contributions{PreTaxRetirement: 5000, RothRetirement: 1000}}

	assert.Empty(t, run(t, plan, "set_retirement_election", `{"roth_retirement": 7000}`))
	assert.Equal(t, model.Contributions{PreTaxRetirement: 5000, RothRetirement: 7000}, plan.Contributions)

	assert.NotEmpty(t, run(t, plan, "set_retirement_election", `{}`))
	assert.NotEmpty(t, run(t, plan, "set_retirement_election", `{"pre_tax_retirement": -1}`))
	assert.Equal(t, 5000.0, plan.Contributions.PreTaxRetirement)
}

func TestSetDistribution(t *testing.T) {
	plan := &model.Plan{}
	assert.Empty(t, run(t, plan, "set_distribution",
		`{"annual_distribution": 40000, "frequency": "quarterly", "subject_to_fica": true}`))
	assert.Equal(t, 40000.0, plan.AnnualDistribution)
	assert.Equal(t, model.DistributionQuarterly, plan.DistributionFrequency)
	assert.True(t, plan.DistributionSubjectToFICA)

	msgs := run(t, plan, "set_distribution", `{"annual_distribution": 1000, "frequency": "none"}`)
	require.Len(t, msgs, 1)
	assert.Equal(t, "DISTRIBUTION_NOT_SCHEDULED", msgs[0].Code)
	assert.True(t, plan.DistributionSubjectToFICA, "unset flag is kept")

	assert.NotEmpty(t, run(t, plan, "set_distribution", `{"annual_distribution": 1, "frequency": "hourly"}`))
}

func TestSetExpenses(t *testing.T) {
	plan := &model.Plan{}
	assert.Empty(t, run(t, plan, "set_expenses", `{"mortgage": 18000, "household": 9000}`))
	assert.Equal(t, model.Expenses{Mortgage: 18000, Household: 9000}, plan.Expenses)
	assert.NotEmpty(t, run(t, plan, "set_expenses", `{"discretionary": -3}`))
}
