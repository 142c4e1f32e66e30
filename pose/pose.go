// Package pose implements component E: planar PnP pose recovery with a
// pinhole 2D fallback, spec.md §4.E.
package pose

import (
	"gocv.io/x/gocv"

	"autoaim/config"
	"autoaim/geometry"
)

// FailureKind records which acceptance branch of §4.E produced the
// result, for the orchestrator's observability/confidence bookkeeping.
type FailureKind int

const (
	Accepted FailureKind = iota
	FallbackNumericReject // PnP "succeeded" but tvec/distance were rejected
	FallbackSolverFailure // PnP reported outright failure
)

// Result is the pose solver's output.
type Result struct {
	Solved     bool
	Position   geometry.Vector3 // mm, camera frame
	Rotation   geometry.Vector3 // axis-angle, radians
	DistanceCM float64
	Kind       FailureKind
}

const (
	minAcceptedDistanceCM = 5.0
	maxAcceptedDistanceCM = 1000.0
)

// Solve implements spec.md §4.E in full: it attempts planar PnP, applies
// the three acceptance checks, and falls back to the pinhole
// approximation when any of them fails.
func Solve(corners [4]geometry.Vector2, size config.ArmorSize, intr config.CameraIntrinsics, armorWidthPx float64) Result {
	model := config.ModelFor(size)
	tvec, rvec, ok := solvePnPIPPE(model, corners, intr)

	if ok {
		pos := geometry.Vector3{X: tvec[0], Y: tvec[1], Z: tvec[2]}
		if pos.IsFinite() {
			dist := pos.Norm() / 10.0 // mm -> cm
			if dist >= minAcceptedDistanceCM && dist <= maxAcceptedDistanceCM {
				return Result{
					Solved:     true,
					Position:   pos,
					Rotation:   geometry.Vector3{X: rvec[0], Y: rvec[1], Z: rvec[2]},
					DistanceCM: dist,
					Kind:       Accepted,
				}
			}
			return fallback2D(corners, armorWidthPx, FallbackNumericReject)
		}
		return fallback2D(corners, armorWidthPx, FallbackNumericReject)
	}
	return fallback2D(corners, armorWidthPx, FallbackSolverFailure)
}

// fallback2D implements spec.md §4.E's numbered pinhole approximation.
func fallback2D(corners [4]geometry.Vector2, armorWidthPx float64, kind FailureKind) Result {
	if armorWidthPx <= 0 {
		return Result{Solved: false, Kind: kind}
	}
	distanceCM := (100.0 * 100.0) / armorWidthPx

	cx := (corners[0].X + corners[2].X) / 2
	cy := (corners[0].Y + corners[2].Y) / 2

	x := (cx - 320) * distanceCM * 10 / 800
	y := -(cy - 240) * distanceCM * 10 / 800
	z := distanceCM * 10

	pos := geometry.Vector3{X: x, Y: y, Z: z}
	return Result{
		Solved:     true,
		Position:   pos,
		DistanceCM: distanceCM,
		Kind:       kind,
	}
}

// solvePnPIPPE wraps gocv's planar-target PnP solver. It returns ok=false
// when the underlying solver reports failure; Solve then falls back to the
// 2D estimate with Kind FallbackSolverFailure, which the orchestrator
// penalises more heavily than a numerically rejected solution.
func solvePnPIPPE(model config.ArmorModel, corners [4]geometry.Vector2, intr config.CameraIntrinsics) (tvec, rvec [3]float64, ok bool) {
	objPts := model.Corners3D()

	objectPoints := gocv.NewPoint3fVector()
	defer objectPoints.Close()
	for _, p := range objPts {
		objectPoints.Append(gocv.NewPoint3f(float32(p[0]), float32(p[1]), float32(p[2])))
	}

	imagePoints := gocv.NewPoint2fVector()
	defer imagePoints.Close()
	for _, c := range corners {
		imagePoints.Append(gocv.NewPoint2f(float32(c.X), float32(c.Y)))
	}

	m := intr.Matrix3x3()
	cameraMatrix := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV64F)
	defer cameraMatrix.Close()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cameraMatrix.SetDoubleAt(i, j, m[i*3+j])
		}
	}

	dist := gocv.NewMatWithSize(1, 4, gocv.MatTypeCV64F)
	defer dist.Close()
	for i, k := range intr.Distortion {
		dist.SetDoubleAt(0, i, k)
	}

	rvecMat := gocv.NewMat()
	defer rvecMat.Close()
	tvecMat := gocv.NewMat()
	defer tvecMat.Close()

	success := gocv.SolvePnP(objectPoints, imagePoints, cameraMatrix, dist, &rvecMat, &tvecMat, false, gocv.SolvePnPIPPE)
	if !success || tvecMat.Rows() < 3 || rvecMat.Rows() < 3 {
		return tvec, rvec, false
	}

	for i := 0; i < 3; i++ {
		tvec[i] = tvecMat.GetDoubleAt(i, 0)
		rvec[i] = rvecMat.GetDoubleAt(i, 0)
	}
	return tvec, rvec, true
}
