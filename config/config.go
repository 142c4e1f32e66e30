// Package config holds the immutable-per-frame configuration consumed by
// every stage of the targeting pipeline: detection thresholds, camera
// intrinsics, armor models, and ballistics constants.
package config

import "math"

// Color is the enemy armor color the detector searches for.
type Color int

const (
	Red Color = iota
	Blue
)

func (c Color) String() string {
	if c == Blue {
		return "BLUE"
	}
	return "RED"
}

// Toggle flips RED<->BLUE, the only operator mutation defined for Color.
func (c Color) Toggle() Color {
	if c == Red {
		return Blue
	}
	return Red
}

// ArmorSize distinguishes the two physical armor plate models.
type ArmorSize int

const (
	SizeUnknown ArmorSize = iota
	SizeSmall
	SizeBig
)

// FlightTimeMode resolves the open question in spec.md §9: the source
// computes flight_time as distance_3d (cm) / bullet_speed (m/s), which is
// 100x the physical flight time. Kept by default for bit-compatibility
// with downstream hit-probability tuning.
type FlightTimeMode int

const (
	LegacyFlightTime FlightTimeMode = iota
	CorrectedFlightTime
)

// CornerOrderMode resolves the corner-ordering open question in spec.md §9.
type CornerOrderMode int

const (
	LegacyCornerOrder CornerOrderMode = iota
	FixedCornerOrder
)

// DetectionParams are the contour-analyzer / mask thresholds. Together
// with EnemyColor they are the configuration operator input mutates
// between frames.
type DetectionParams struct {
	BinaryThreshold float64
	AreaThreshold   float64
	AspectRatioMin  float64
	AspectRatioMax  float64
	ErosionSize     int
	DilationSize    int
}

// DefaultDetectionParams matches spec.md §3's stated defaults.
func DefaultDetectionParams() DetectionParams {
	return DetectionParams{
		BinaryThreshold: 100,
		AreaThreshold:   100,
		AspectRatioMin:  1.0,
		AspectRatioMax:  5.0,
		ErosionSize:     2,
		DilationSize:    3,
	}
}

// AdjustAreaThreshold applies the '+'/'-' operator binding: area_threshold
// moves by 50, floored at 50.
func (p *DetectionParams) AdjustAreaThreshold(delta float64) {
	p.AreaThreshold = math.Max(50, p.AreaThreshold+delta)
}

// AdjustAspectRatioMax applies the 'a'/'z' operator binding: aspect_ratio_max
// moves by 0.5, floored at 2.0.
func (p *DetectionParams) AdjustAspectRatioMax(delta float64) {
	p.AspectRatioMax = math.Max(2.0, p.AspectRatioMax+delta)
}

// CameraIntrinsics are hard-coded per spec.md §9: the 2D fallback's
// pixel-to-world formula is derived for exactly these values.
type CameraIntrinsics struct {
	FocalLength float64
	PrincipalX  float64
	PrincipalY  float64
	Distortion  [4]float64 // k1..k4
}

// DefaultCameraIntrinsics matches the original_source calibration.
func DefaultCameraIntrinsics() CameraIntrinsics {
	return CameraIntrinsics{
		FocalLength: 800,
		PrincipalX:  320,
		PrincipalY:  240,
	}
}

// Matrix3x3 returns the row-major 3x3 intrinsic matrix used by the PnP solver.
func (c CameraIntrinsics) Matrix3x3() [9]float64 {
	return [9]float64{
		c.FocalLength, 0, c.PrincipalX,
		0, c.FocalLength, c.PrincipalY,
		0, 0, 1,
	}
}

// ArmorModel is a 4-corner planar rectangle in millimeters, centered at
// the origin, ordered TL, TR, BR, BL, as spec.md §3 defines.
type ArmorModel struct {
	HalfWidth  float64
	HalfHeight float64
}

// Corners3D returns the model's object-space points in PnP corner order.
func (m ArmorModel) Corners3D() [4][3]float64 {
	return [4][3]float64{
		{-m.HalfWidth, -m.HalfHeight, 0},
		{m.HalfWidth, -m.HalfHeight, 0},
		{m.HalfWidth, m.HalfHeight, 0},
		{-m.HalfWidth, m.HalfHeight, 0},
	}
}

// SmallArmor and LargeArmor are the two fixed armor models from spec.md §3.
var (
	SmallArmor = ArmorModel{HalfWidth: 67.5, HalfHeight: 27.5}
	LargeArmor = ArmorModel{HalfWidth: 115.0, HalfHeight: 27.5}
)

// ModelFor selects the 3D armor model matching a detected size, falling
// back to the small model when size is unknown (classification still
// ran the PnP attempt against the best available guess).
func ModelFor(size ArmorSize) ArmorModel {
	if size == SizeBig {
		return LargeArmor
	}
	return SmallArmor
}

// BallisticsConfig holds the constant-speed projectile model.
type BallisticsConfig struct {
	BulletSpeed float64 // m/s
	Gravity     float64 // m/s^2
}

// DefaultBallisticsConfig matches spec.md §3's stated defaults.
func DefaultBallisticsConfig() BallisticsConfig {
	return BallisticsConfig{BulletSpeed: 30, Gravity: 9.81}
}

// ValidityMask is a bitmask over TargetID controlling targeting.Validate's
// validity gate. AllowAllTargets is the demo default from spec.md §4.I.
type ValidityMask uint8

const AllowAllTargets ValidityMask = 0xFF

// Config is the full, immutable-per-frame configuration owned by the
// orchestrator and mutated only by operator input between frames.
type Config struct {
	EnemyColor      Color
	Intrinsics      CameraIntrinsics
	Ballistics      BallisticsConfig
	Detection       DetectionParams
	Validity        ValidityMask
	FlightTimeMode  FlightTimeMode
	CornerOrderMode CornerOrderMode
}

// Default returns a Config with every field set to spec.md's stated
// defaults, quirks preserved (see FlightTimeMode/CornerOrderMode docs).
func Default() Config {
	return Config{
		EnemyColor:      Red,
		Intrinsics:      DefaultCameraIntrinsics(),
		Ballistics:      DefaultBallisticsConfig(),
		Detection:       DefaultDetectionParams(),
		Validity:        AllowAllTargets,
		FlightTimeMode:  LegacyFlightTime,
		CornerOrderMode: LegacyCornerOrder,
	}
}
