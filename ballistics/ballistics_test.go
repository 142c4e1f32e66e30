package ballistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"autoaim/config"
	"autoaim/geometry"
)

func TestSolve_ZeroVelocityYawMatchesCurrentYaw(t *testing.T) {
	predicted := geometry.Vector3{X: 100, Y: 0, Z: 1000}
	cfg := config.DefaultBallisticsConfig()

	sol := Solve(predicted, cfg, nil)
	expectedYaw := geometry.SafeAtan2Deg(predicted.X, predicted.Z, "yaw", nil)
	assert.InDelta(t, expectedYaw, sol.FiringYaw, 1e-9)
}

func TestSolve_BulletDropIncreasesWithDistance(t *testing.T) {
	cfg := config.DefaultBallisticsConfig()
	near := Solve(geometry.Vector3{X: 0, Y: 0, Z: 1000}, cfg, nil)
	far := Solve(geometry.Vector3{X: 0, Y: 0, Z: 8000}, cfg, nil)
	assert.Greater(t, far.BulletDrop, near.BulletDrop)
}

func TestSolve_DegenerateOriginNeverProducesNaN(t *testing.T) {
	cfg := config.DefaultBallisticsConfig()
	sol := Solve(geometry.Vector3{}, cfg, nil)
	assert.False(t, math.IsNaN(sol.FiringYaw))
	assert.False(t, math.IsNaN(sol.FiringPitch))
	assert.Equal(t, 0.0, sol.FiringPitch)
}

func TestSolve_DegenerateHookInvokedOnNonFiniteInput(t *testing.T) {
	var called []string
	hook := func(q string) { called = append(called, q) }

	cfg := config.DefaultBallisticsConfig()
	Solve(geometry.Vector3{X: math.NaN(), Y: 0, Z: 1000}, cfg, hook)
	assert.Contains(t, called, "firing_yaw")
}
