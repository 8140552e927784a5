package jsonpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffObjects(t *testing.T) {
	a := map[string]any{"gross": 100.0, "status": "single", "gone": true}
	b := map[string]any{"gross": 150.0, "status": "single", "new/key": "x"}

	ops := Diff(a, b, "")
	require.Len(t, ops, 3)

	assert.Equal(t, Operation{Op: "remove", Path: "/gone"}, ops[0])
	assert.Equal(t, "replace", ops[1].Op)
	assert.Equal(t, "/gross", ops[1].Path)
	require.NotNil(t, ops[1].Delta)
	assert.Equal(t, 50.0, *ops[1].Delta)
	assert.Equal(t, Operation{Op: "add", Path: "/new~1key", Value: "x"}, ops[2])
}

func TestDiffArrays(t *testing.T) {
	a := []any{1.0, 2.0, 3.0}
	b := []any{1.0, 5.0}

	ops := Diff(a, b, "/periods")
	require.Len(t, ops, 2)
	assert.Equal(t, "/periods/1", ops[0].Path)
	assert.Equal(t, Operation{Op: "remove", Path: "/periods/2"}, ops[1])

	ops = Diff(b, a, "")
	assert.Equal(t, "add", ops[len(ops)-1].Op)
}

func TestDiffTypeChange(t *testing.T) {
	ops := Diff(map[string]any{"x": 1.0}, map[string]any{"x": "one"}, "")
	require.Len(t, ops, 1)
	assert.Nil(t, ops[0].Delta)
	assert.Equal(t, "one", ops[0].Value)

	ops = Diff(map[string]any{"x": []any{}}, map[string]any{"x": map[string]any{}}, "")
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Op)
}

func TestDiffBoth(t *testing.T) {
	a := map[string]any{"n": 1.0}
	b := map[string]any{"n": 4.0}
	fwd, bwd := DiffBoth(a, b, "")
	assert.Equal(t, 3.0, *fwd[0].Delta)
	assert.Equal(t, -3.0, *bwd[0].Delta)
}

func TestDiffValues(t *testing.T) {
	type summary struct {
		Gross float64 `json:"gross"`
		Tax   float64 `json:"tax"`
	}
	ops, err := DiffValues(summary{Gross: 10, Tax: 2}, summary{Gross: 10, Tax: 3})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "/tax", ops[0].Path)
	assert.Equal(t, 1.0, *ops[0].Delta)

	ops, err = DiffValues(summary{}, summary{})
	require.NoError(t, err)
	assert.Empty(t, ops)
}
