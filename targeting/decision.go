package targeting

import "autoaim/geometry"

// velocityFactorThresholdMS is the boundary in spec.md §4.J / §8: at
// exactly 2.0 m/s the factor is still 0.5 (the comparison is strict '<').
const velocityFactorThresholdMS = 2.0

// Decision is component J's output.
type Decision struct {
	HitProbability float64
	CanFire        bool
}

// Decide implements spec.md §4.J's fire-decision gate. distanceCM and
// confidence must already reflect any upstream penalties (e.g. the PnP
// fallback confidence deductions the pipeline orchestrator applies).
func Decide(distanceCM, confidence float64, velocity geometry.Vector3, isValidTarget bool) Decision {
	distM := distanceCM / 100.0

	distanceFactor := 1.0 - distM/8.0
	if distanceFactor < 0 {
		distanceFactor = 0
	}
	confidenceFactor := confidence / 100.0

	velocityMS := velocity.Norm() / 1000.0 // mm/s -> m/s
	velocityFactor := 1.0
	if velocityMS >= velocityFactorThresholdMS {
		velocityFactor = 0.5
	}

	hitProbability := distanceFactor * confidenceFactor * velocityFactor

	canFire := isValidTarget &&
		hitProbability > 0.5 &&
		distM > 1.0 &&
		distM < 8.0

	return Decision{HitProbability: hitProbability, CanFire: canFire}
}
