package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirkkok101/zorkcore/types"
)

func TestEvalCondition(t *testing.T) {
	lamp := &types.Item{ID: "lamp", State: types.ItemState{IsLit: true}}

	tests := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"state.lit", true},
		{"not state.lit", false},
		{"state.open", false},
		{"state.lit and not state.open", true},
	}
	for _, tt := range tests {
		got, err := EvalCondition(tt.expr, lamp)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}

func TestEvalConditionSyntaxError(t *testing.T) {
	_, err := EvalCondition("state.lit and", &types.Item{})
	assert.Error(t, err)
}

func TestRunEffect(t *testing.T) {
	rug := &types.Item{ID: "rug"}

	require.NoError(t, RunEffect("state.open = true", rug))
	assert.True(t, rug.State.Open)

	require.NoError(t, RunEffect("state.open = not state.open", rug))
	assert.False(t, rug.State.Open)

	require.NoError(t, RunEffect("", rug), "empty effect is a no-op")
}

func TestSandboxBlocksDangerousGlobals(t *testing.T) {
	it := &types.Item{ID: "scroll"}

	for _, expr := range []string{
		`loadstring("return 1")`,
		`dofile("/etc/passwd")`,
		`print("hi")`,
	} {
		err := RunEffect(expr, it)
		assert.Error(t, err, expr)
	}
}
