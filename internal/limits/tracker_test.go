package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paycheck-engine/internal/model"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(model.Caps{
		SocialSecurityWageBase: 1000,
		Retirement:             300,
		DependentCareFSA:       50,
		MedicalFSA:             0,
	})
	require.NoError(t, err)
	return tr
}

func TestAllowClipsAtCap(t *testing.T) {
	tr := newTracker(t)

	got, err := tr.Allow(SocialSecurityWages, 400)
	require.NoError(t, err)
	assert.Equal(t, 400.0, got)
	assert.False(t, tr.Reached(SocialSecurityWages))

	got, _ = tr.Allow(SocialSecurityWages, 400)
	assert.Equal(t, 400.0, got)

	got, _ = tr.Allow(SocialSecurityWages, 400)
	assert.Equal(t, 200.0, got, "closes the gap exactly")
	assert.True(t, tr.Reached(SocialSecurityWages))
	assert.Equal(t, 1000.0, tr.Totals().SocialSecurityWages)

	got, _ = tr.Allow(SocialSecurityWages, 400)
	assert.Zero(t, got)
	assert.Zero(t, tr.Remaining(SocialSecurityWages))
}

func TestAllowRejectsNegative(t *testing.T) {
	tr := newTracker(t)
	_, err := tr.Allow(Retirement, -1)
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	assert.Zero(t, tr.Totals().Retirement)
}

func TestZeroCapHasNoRoom(t *testing.T) {
	tr := newTracker(t)
	got, err := tr.Allow(MedicalFSA, 25)
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.True(t, tr.Reached(MedicalFSA))
}

func TestTotalsAreMonotonic(t *testing.T) {
	tr := newTracker(t)
	prev := tr.Totals()
	for i := 0; i < 10; i++ {
		_, _ = tr.Allow(Retirement, 45)
		_, _ = tr.Allow(DependentCareFSA, 7)
		tr.AddMedicareWages(100)
		cur := tr.Totals()
		assert.GreaterOrEqual(t, cur.Retirement, prev.Retirement)
		assert.GreaterOrEqual(t, cur.DependentCareFSA, prev.DependentCareFSA)
		assert.GreaterOrEqual(t, cur.MedicareWages, prev.MedicareWages)
		assert.LessOrEqual(t, cur.Retirement, 300.0)
		prev = cur
	}
	assert.Equal(t, 300.0, prev.Retirement)
	assert.Equal(t, 50.0, prev.DependentCareFSA)
	assert.Equal(t, 1000.0, prev.MedicareWages)
}

func TestReset(t *testing.T) {
	tr := newTracker(t)
	_, _ = tr.Allow(Retirement, 300)
	tr.RecordSocialSecurityTax(12)
	tr.Reset()
	assert.Equal(t, RunningTotals{}, tr.Totals())
	assert.Equal(t, 300.0, tr.Remaining(Retirement))
}

func TestNewTrackerRejectsNegativeCaps(t *testing.T) {
	_, err := NewTracker(model.Caps{Retirement: -5})
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestRetirementLimit(t *testing.T) {
	caps := model.RetirementCaps{Base: 23500, CatchUp: 7500, SuperCatchUp: 11250}
	tests := []struct {
		age  int
		want float64
	}{
		{35, 23500},
		{49, 23500},
		{50, 31000},
		{59, 31000},
		{60, 34750},
		{63, 34750},
		{64, 31000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RetirementLimit(caps, tt.age), "age %d", tt.age)
	}
}
