package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoaim/geometry"
)

func TestHistory_EvictsOldestBeyondCapacity(t *testing.T) {
	h := NewHistory[int]()
	for i := 0; i < Capacity+3; i++ {
		h.Push(i)
	}
	require.Equal(t, Capacity, h.Len())

	back, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, Capacity+2, back)

	slice := h.Slice()
	assert.Equal(t, 3, slice[0]) // oldest surviving entry
	assert.Len(t, slice, Capacity)
}

func TestHistory_EmptyBackReportsFalse(t *testing.T) {
	h := NewHistory[int]()
	_, ok := h.Back()
	assert.False(t, ok)
}

func TestPredict_NoPreviousSampleYieldsZeroVelocity(t *testing.T) {
	pos := geometry.Vector3{X: 100, Y: 0, Z: 1000}
	pred := Predict(pos, 100, PrevSample{Solved: false}, 30, false)
	assert.Equal(t, geometry.Vector3{}, pred.Velocity)
	assert.Equal(t, pos, pred.PredictedPos)
}

func TestPredict_LinearMotionYieldsForwardPrediction(t *testing.T) {
	prev := geometry.Vector3{X: 270, Y: 0, Z: 1000}
	cur := geometry.Vector3{X: 320, Y: 0, Z: 1000}

	pred := Predict(cur, 100, PrevSample{Solved: true, Position: prev}, 30, false)
	assert.Greater(t, pred.Velocity.X, 0.0)
	assert.Greater(t, pred.PredictedPos.X, cur.X)
}

func TestPredict_ZeroVelocityKeepsPredictedEqualToCurrent(t *testing.T) {
	pos := geometry.Vector3{X: 50, Y: 10, Z: 900}
	pred := Predict(pos, 90, PrevSample{Solved: true, Position: pos}, 30, false)
	assert.Equal(t, geometry.Vector3{}, pred.Velocity)
	assert.Equal(t, pos, pred.PredictedPos)
}
