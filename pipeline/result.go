// Package pipeline implements component K: the orchestrator that runs
// vision, pose, tracking, ballistics, and targeting in strict sequence
// and produces a TargetingResult, spec.md §4.K.
package pipeline

import (
	"image"

	"github.com/google/uuid"

	"autoaim/config"
	"autoaim/geometry"
	"autoaim/targeting"
)

// Stage is the one-scalar state machine of spec.md §4.K.
type Stage int

const (
	Idle Stage = iota
	Detect
	Pose
	Predict
	Ballistics
	Classify
	Decide
)

func (s Stage) String() string {
	switch s {
	case Detect:
		return "DETECT"
	case Pose:
		return "POSE"
	case Predict:
		return "PREDICT"
	case Ballistics:
		return "BALLISTICS"
	case Classify:
		return "CLASSIFY"
	case Decide:
		return "DECIDE"
	default:
		return "IDLE"
	}
}

// FailureKind is the closed set of error kinds from spec.md §7. These
// are never returned as Go errors; they are recorded on the result for
// observability, and the propagation policy lets downstream fields
// simply keep their zero values.
type FailureKind int

const (
	NoDetection FailureKind = iota
	PoseInvalid
	PoseFallback
	NumericDegenerate
	TargetInvalid
)

// TargetingResult is the per-frame output contract, spec.md §3.
type TargetingResult struct {
	FrameID uuid.UUID
	Stage   Stage
	Notes   []FailureKind

	ArmorDetected bool
	ArmorBBox     image.Rectangle
	Center2D      geometry.Vector2
	ArmorCorners  [4]geometry.Vector2
	DetectedColor config.Color
	ArmorSize     config.ArmorSize
	Confidence    float64

	PositionSolved bool
	Position3D     geometry.Vector3 // mm, camera frame
	Rotation3D     geometry.Vector3 // axis-angle
	Distance3D     float64          // cm

	Velocity3D   geometry.Vector3 // mm/s
	PredictedPos geometry.Vector3 // mm

	YawAngle   float64 // deg
	PitchAngle float64 // deg

	FlightTime float64 // s
	BulletDrop float64 // mm

	FiringYaw   float64 // deg
	FiringPitch float64 // deg

	HitProbability float64
	CanFire        bool

	TargetID       targeting.TargetID
	TargetPriority int
	IsValidTarget  bool
}
