package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autoaim/config"
	"autoaim/geometry"
)

func TestRandomClassifier_AlwaysMapsToKnownTarget(t *testing.T) {
	c := NewRandomClassifier(42)
	for i := 0; i < 50; i++ {
		cls := c.Classify()
		assert.NotEqual(t, UnknownTarget, cls.ID)
		assert.GreaterOrEqual(t, cls.Priority, 1)
		assert.LessOrEqual(t, cls.Priority, 5)
	}
}

func TestValidate_AllowAllAcceptsEveryTarget(t *testing.T) {
	for _, id := range []TargetID{Hero, Sentry, Infantry3, Infantry4, Infantry5} {
		assert.True(t, Validate(Classification{ID: id, Priority: 1}, config.AllowAllTargets))
	}
}

func TestValidate_EmptyMaskRejectsEverything(t *testing.T) {
	assert.False(t, Validate(Classification{ID: Hero}, config.ValidityMask(0)))
}

func TestDecide_DistanceBoundariesAreStrict(t *testing.T) {
	d1 := Decide(100, 100, geometry.Vector3{}, true) // 1.0m exactly
	assert.False(t, d1.CanFire)

	d8 := Decide(800, 100, geometry.Vector3{}, true) // 8.0m exactly
	assert.False(t, d8.CanFire)

	dMid := Decide(400, 100, geometry.Vector3{}, true) // 4.0m, well inside range
	assert.Greater(t, dMid.HitProbability, 0.5)
	assert.True(t, dMid.CanFire)
}

func TestDecide_VelocityBoundaryUsesStrictLessThan(t *testing.T) {
	// velocity magnitude exactly 2.0 m/s -> 2000 mm/s
	v := geometry.Vector3{X: 2000, Y: 0, Z: 0}
	d := Decide(300, 100, v, true)
	assert.InDelta(t, 0.5*1.0*((1-3.0/8.0)), d.HitProbability, 1e-9)
}

func TestDecide_InvalidTargetNeverFires(t *testing.T) {
	d := Decide(300, 100, geometry.Vector3{}, false)
	assert.False(t, d.CanFire)
}

func TestDecide_HitProbabilityAlwaysInUnitRange(t *testing.T) {
	d := Decide(50, 100, geometry.Vector3{}, true)
	assert.GreaterOrEqual(t, d.HitProbability, 0.0)
	assert.LessOrEqual(t, d.HitProbability, 1.0)
}
