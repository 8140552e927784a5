package growth

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"paycheck-engine/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProjectDividendsDRIP(t *testing.T) {
	years, err := ProjectDividends(DividendParams{
		StartingBalance:    10000,
		AnnualContribution: 1000,
		Years:              2,
		PriceGrowth:        0.05,
		DividendYield:      0.02,
		DividendTaxRate:    0.15,
		Reinvest:           true,
	})
	require.NoError(t, err)
	require.Len(t, years, 2)

	y1 := years[0]
	assert.Equal(t, 550.0, y1.Appreciation)
	assert.Equal(t, 220.0, y1.Dividends)
	assert.Equal(t, 33.0, y1.DividendTax)
	assert.Equal(t, 187.0, y1.Reinvested)
	assert.Zero(t, y1.CashPaid)
	assert.Equal(t, 11737.0, y1.EndBalance)
	assert.Equal(t, 11737.0, years[1].StartBalance)
}

func TestProjectDividendsCash(t *testing.T) {
	years, err := ProjectDividends(DividendParams{
		StartingBalance: 10000,
		Years:           3,
		DividendYield:   0.04,
	})
	require.NoError(t, err)
	for _, y := range years {
		assert.Equal(t, 400.0, y.CashPaid)
		assert.Equal(t, 10000.0, y.EndBalance)
	}
}

func TestProjectDividendsRejectsBadParams(t *testing.T) {
	for _, p := range []DividendParams{
		{Years: 0},
		{Years: 1, StartingBalance: -1},
		{Years: 1, DividendYield: -0.1},
		{Years: 1, DividendTaxRate: 2},
		{Years: 1, PriceGrowth: -1},
	} {
		_, err := ProjectDividends(p)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration, "%+v", p)
	}
}

func TestMonteCarloDeterministic(t *testing.T) {
	p := SimulationParams{
		StartingBalance:    50000,
		AnnualContribution: 12000,
		Years:              10,
		Paths:              2000,
		MeanReturn:         0.06,
		Volatility:         0.15,
		Seed:               42,
		ChunkSize:          128,
	}

	a, err := MonteCarlo(context.Background(), p)
	require.NoError(t, err)

	p.Workers = 1
	b, err := MonteCarlo(context.Background(), p)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("results depend on scheduling (-parallel +serial):\n%s", diff)
	}

	require.Len(t, a.Years, 10)
	for _, y := range a.Years {
		assert.LessOrEqual(t, y.P10, y.P50)
		assert.LessOrEqual(t, y.P50, y.P90)
		assert.GreaterOrEqual(t, y.P10, 0.0)
	}
	assert.GreaterOrEqual(t, a.ShortfallProbability, 0.0)
	assert.LessOrEqual(t, a.ShortfallProbability, 1.0)
}

func TestMonteCarloWithoutVolatility(t *testing.T) {
	res, err := MonteCarlo(context.Background(), SimulationParams{
		StartingBalance: 1000,
		Years:           2,
		Paths:           10,
		MeanReturn:      0.10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1100.0, res.Years[0].P50)
	assert.Equal(t, 1210.0, res.Years[1].P10)
	assert.Equal(t, 1210.0, res.Years[1].P90)
	assert.Zero(t, res.ShortfallProbability)
}

func TestMonteCarloCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := MonteCarlo(ctx, SimulationParams{Years: 1, Paths: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMonteCarloRejectsBadParams(t *testing.T) {
	for _, p := range []SimulationParams{
		{Years: 0, Paths: 1},
		{Years: 1, Paths: 0},
		{Years: 1, Paths: 1, Volatility: -1},
	} {
		_, err := MonteCarlo(context.Background(), p)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	}
}
