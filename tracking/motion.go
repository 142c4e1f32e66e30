package tracking

import "autoaim/geometry"

// FrameInterval is the fixed inter-frame period spec.md §4.G assumes for
// the finite-difference velocity estimate (30 FPS).
const FrameInterval = 1.0 / 30.0

// PrevSample is the subset of the previous frame's result the motion
// predictor needs.
type PrevSample struct {
	Solved   bool
	Position geometry.Vector3 // mm
}

// Prediction is component G's output.
type Prediction struct {
	Velocity     geometry.Vector3 // mm/s
	PredictedPos geometry.Vector3 // mm
	FlightTime   float64          // s (legacy: mixed-unit, see spec.md §9)
}

// Predict implements spec.md §4.G. When prev.Solved, it computes a
// fixed-Δt finite-difference velocity and linearly extrapolates position
// over flightTime = distanceCM / bulletSpeed (kept bit-compatible with
// the source's mixed cm/(m/s) units by default). Otherwise velocity is
// zero and predicted position equals current position.
func Predict(current geometry.Vector3, distanceCM float64, prev PrevSample, bulletSpeed float64, corrected bool) Prediction {
	if !prev.Solved {
		return Prediction{PredictedPos: current}
	}

	velocity := current.Sub(prev.Position).Scale(1.0 / FrameInterval)

	flightTime := distanceCM / bulletSpeed
	if corrected {
		// Physically correct: distance in meters / bullet speed in m/s.
		flightTime = (distanceCM / 100.0) / bulletSpeed
	}

	predicted := current.Add(velocity.Scale(flightTime))
	return Prediction{
		Velocity:     velocity,
		PredictedPos: predicted,
		FlightTime:   flightTime,
	}
}
