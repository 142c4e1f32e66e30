// Package ballistics implements component H: gravity-compensated firing
// angles for a constant-speed projectile, spec.md §4.H.
package ballistics

import (
	"autoaim/config"
	"autoaim/geometry"
)

// Solution is component H's output.
type Solution struct {
	FlightTime  float64 // ||predicted|| (mm) / BulletSpeed (m/s), independent of config.FlightTimeMode
	BulletDrop  float64 // mm
	FiringYaw   float64 // deg
	FiringPitch float64 // deg
}

// Solve implements spec.md §4.H: it recomputes flight time from the
// predicted position's norm, derives bullet drop from gravity, and
// computes firing angles with the drop subtracted from the vertical
// component before the pitch atan2.
func Solve(predicted geometry.Vector3, cfg config.BallisticsConfig, hook geometry.DegenerateHook) Solution {
	flightTime := predicted.Norm() / cfg.BulletSpeed
	drop := 0.5 * cfg.Gravity * flightTime * flightTime

	yaw := geometry.SafeAtan2Deg(predicted.X, predicted.Z, "firing_yaw", hook)
	horiz := geometry.HorizontalDistance(predicted.X, predicted.Z)
	pitch := geometry.SafePitchDeg(predicted.Y-drop, horiz, "firing_pitch", hook)

	return Solution{
		FlightTime:  flightTime,
		BulletDrop:  drop,
		FiringYaw:   geometry.ClampYawDeg(yaw),
		FiringPitch: geometry.ClampPitchDeg(pitch),
	}
}
