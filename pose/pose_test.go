package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autoaim/config"
	"autoaim/geometry"
)

func centeredCorners(cx, cy, hw, hh float64) [4]geometry.Vector2 {
	return [4]geometry.Vector2{
		{X: cx - hw, Y: cy - hh},
		{X: cx + hw, Y: cy - hh},
		{X: cx + hw, Y: cy + hh},
		{X: cx - hw, Y: cy + hh},
	}
}

func TestSolve_CenteredArmorWithinExpectedRange(t *testing.T) {
	corners := centeredCorners(320, 240, 40, 20)
	intr := config.DefaultCameraIntrinsics()

	res := Solve(corners, config.SizeSmall, intr, 80)
	assert.True(t, res.Solved)
	assert.True(t, res.Position.IsFinite())
	assert.GreaterOrEqual(t, res.DistanceCM, 20.0)
	assert.LessOrEqual(t, res.DistanceCM, 200.0)
}

func TestSolve_TinyArmorFallsBackToOutOfRangeDistance(t *testing.T) {
	corners := centeredCorners(320, 240, 2, 1)
	intr := config.DefaultCameraIntrinsics()

	res := Solve(corners, config.SizeSmall, intr, 5)
	assert.True(t, res.Solved)
	assert.Greater(t, res.DistanceCM, 1000.0) // 100*100/5 = 2000cm, far beyond acceptance
}

func TestFallback2D_RightShiftedTargetYawsPositive(t *testing.T) {
	corners := centeredCorners(470, 240, 40, 20)
	res := fallback2D(corners, 80, FallbackSolverFailure)
	assert.True(t, res.Solved)
	assert.Greater(t, res.Position.X, 0.0)
}

func TestFallback2D_DegenerateWidthNeverPanics(t *testing.T) {
	corners := centeredCorners(320, 240, 0, 0)
	res := fallback2D(corners, 0, FallbackSolverFailure)
	assert.False(t, res.Solved)
}
