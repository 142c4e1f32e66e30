// Package geometry provides the 2D/3D vector primitives and guarded
// trigonometry shared by every downstream stage of the targeting
// pipeline. Every trig entry point here is safe: non-finite inputs never
// propagate, they collapse to zero and report that they did.
package geometry

import "math"

// Vector3 is a camera-frame 3D point or displacement, in millimeters
// unless documented otherwise at the call site. X right, Y down, Z
// forward, matching spec.md §3's tactical frame of reference.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether all three components are finite (no NaN/Inf),
// the guard spec.md's invariant 1 requires of position_3d.
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vector2 is a 2D image-plane point in pixels.
type Vector2 struct {
	X, Y float64
}

// DegenerateHook is called whenever a guarded trig operation below would
// otherwise have produced a non-finite result; it receives the name of
// the quantity that was forced to zero. The pipeline package wires this
// to obslog so NumericDegenerate events (spec.md §7) are observable.
// A nil hook is a silent no-op, which every package here defaults to.
type DegenerateHook func(quantity string)

// SafeAtan2Deg computes atan2(y, x) in degrees, guarding against non-finite
// inputs per spec.md §4.E: such inputs force the result to 0 and invoke
// hook, if non-nil, with the given quantity name.
func SafeAtan2Deg(y, x float64, quantity string, hook DegenerateHook) float64 {
	if !isFinite(y) || !isFinite(x) {
		if hook != nil {
			hook(quantity)
		}
		return 0
	}
	if y == 0 && x == 0 {
		return 0
	}
	return math.Atan2(y, x) * 180 / math.Pi
}

// SafePitchDeg computes the guarded pitch angle atan2(-dy, horiz) in
// degrees used by both §4.E's yaw/pitch-to-current-position and §4.H's
// gravity-compensated firing pitch: below the 0.001 horizontal-distance
// threshold the result is exactly 0, never a divide-by-near-zero blowup.
func SafePitchDeg(dy, horiz float64, quantity string, hook DegenerateHook) float64 {
	if !isFinite(dy) || !isFinite(horiz) {
		if hook != nil {
			hook(quantity)
		}
		return 0
	}
	if horiz <= 0.001 {
		return 0
	}
	return math.Atan2(-dy, horiz) * 180 / math.Pi
}

// HorizontalDistance returns sqrt(x*x + z*z), the ground-plane distance
// used throughout §4.E/§4.H's pitch calculations.
func HorizontalDistance(x, z float64) float64 {
	return math.Sqrt(x*x + z*z)
}

// ClampYawDeg bounds yaw to (-180, 180], spec.md §3 invariant 3.
func ClampYawDeg(deg float64) float64 {
	for deg <= -180 {
		deg += 360
	}
	for deg > 180 {
		deg -= 360
	}
	return deg
}

// ClampPitchDeg bounds pitch to [-90, 90], spec.md §3 invariant 3.
func ClampPitchDeg(deg float64) float64 {
	if deg < -90 {
		return -90
	}
	if deg > 90 {
		return 90
	}
	return deg
}
