package cli

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paycheck-engine/internal/jsonpatch"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/scenario"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234567.891, "$1,234,567.89"},
		{999.995, "$1,000.00"},
		{-12.5, "-$12.50"},
		{0.1 + 0.2, "$0.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in), "%v", tt.in)
	}
	assert.Equal(t, "+$10.00", FormatDelta(10))
	assert.Equal(t, "-$10.00", FormatDelta(-10))
	assert.Equal(t, "24.50%", FormatPercent(0.245))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "-1,234,567", FormatNumber(-1234567))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Test",
		Headers: []string{"Name", "Amount"},
		Rows:    [][]string{{"a", "$1.00"}, {"---"}, {"total", "$10.00"}},
	})
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "Amount")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "├")
	assert.Equal(t, "", RenderTable(Table{}))
}

func TestPeriodAndSummaryTables(t *testing.T) {
	results := []model.PeriodResult{
		{Index: 1, Date: "2025-01-15", GrossPay: 5000, NetPay: 3500, Investable: 1500},
		{Index: 2, Date: "2025-01-31", GrossPay: 5000, NetPay: 3500, Investable: 1500, SSCapReached: true},
	}
	pt := PeriodTable(results)
	require.Len(t, pt.Rows, 2)
	assert.Equal(t, "$5,000.00", pt.Rows[0][2])
	assert.Equal(t, "yes", pt.Rows[1][10])

	st := SummaryTable(&model.YearSummary{TotalGrossIncome: 10000, EffectiveTaxRate: 0.3})
	assert.Equal(t, []string{"Gross income", "$10,000.00"}, st.Rows[0])
	assert.Contains(t, RenderTable(st), "30.00%")
}

func TestRenderMessages(t *testing.T) {
	out := RenderMessages([]model.CalculationMessage{
		{Level: model.LevelWarning, Code: model.CodeNegativeCashFlow, Message: "short", Period: 3},
	})
	assert.Contains(t, out, "NEGATIVE_CASH_FLOW")
	assert.Contains(t, out, "(period 3)")
}

func TestComparisonTable(t *testing.T) {
	delta := 1200.0
	report := &scenario.Report{
		Baseline: &model.ProjectionResponse{CalculationMetadata: model.CalculationMetadata{Scenario: "base"}},
		Alternatives: []scenario.Comparison{
			{Scenario: "raise", Outcome: model.OutcomeSuccess, Patch: []jsonpatch.Operation{
				{Op: "replace", Path: "/total_tax", Value: 5000.0, Delta: &delta},
			}},
			{Scenario: "bad", Outcome: model.OutcomeFailure},
		},
	}
	tbl := ComparisonTable(report)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "+$0.00", tbl.Rows[0][1])
	assert.Equal(t, "+$1,200.00", tbl.Rows[0][2])
	assert.Equal(t, []string{"bad", model.OutcomeFailure}, tbl.Rows[1])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []model.PeriodResult{
		{Index: 1, Date: "2025-01-31", GrossPay: 1000.5, IsDistributionPeriod: true},
	}))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, len(csvHeader), len(rows[1]))
	assert.Equal(t, "1000.50", rows[1][4])
	assert.Equal(t, "true", rows[1][24])
}

func TestRenderSparkline(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil))
	assert.Contains(t, RenderSparkline([]float64{0, 10}), "▁█")
}
