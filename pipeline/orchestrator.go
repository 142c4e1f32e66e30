package pipeline

import (
	"math"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"autoaim/ballistics"
	"autoaim/config"
	"autoaim/geometry"
	"autoaim/obslog"
	"autoaim/pose"
	"autoaim/targeting"
	"autoaim/tracking"
	"autoaim/vision"
)

// History is the bounded FIFO of recent results, spec.md §4.F.
type History = tracking.History[TargetingResult]

// NewHistory returns an empty target history.
func NewHistory() *History {
	return tracking.NewHistory[TargetingResult]()
}

// Orchestrator runs components A-J in order for each frame, spec.md §4.K.
type Orchestrator struct {
	Classifier targeting.Classifier
	Logger     *obslog.Logger
}

// NewOrchestrator returns an Orchestrator with a RandomClassifier and a
// logger that records to its in-memory ring without console output;
// override either field before use if needed.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		Classifier: targeting.NewRandomClassifier(1),
		Logger:     obslog.New(false),
	}
}

// Process implements spec.md §6's pipeline entry point: it runs the
// strict B→C→D→E→F→G→H→I→J chain, short-circuiting on failure, and
// always pushes the (possibly partial) result into history before
// returning it.
func (o *Orchestrator) Process(frame gocv.Mat, cfg config.Config, history *History) TargetingResult {
	result := TargetingResult{
		FrameID:       uuid.New(),
		Stage:         Idle,
		DetectedColor: cfg.EnemyColor,
	}

	hook := func(quantity string) {
		result.Notes = append(result.Notes, NumericDegenerate)
		if o.Logger != nil {
			o.Logger.Degenerate(quantity)
		}
	}

	result.Stage = Detect
	mask := vision.ColorMask(frame, cfg.EnemyColor, cfg.Detection)
	defer mask.Close()

	det := vision.AnalyzeContours(mask, cfg.Detection)
	if !det.Found {
		result.Notes = append(result.Notes, NoDetection)
		history.Push(result)
		return result
	}

	result.ArmorDetected = true
	result.ArmorBBox = det.BBox
	result.Center2D = det.Center
	result.ArmorSize = det.Size
	result.Confidence = det.Confidence
	result.ArmorCorners = vision.ExtractCorners(det.Rect, cfg.CornerOrderMode)

	result.Stage = Pose
	armorWidthPx := math.Max(float64(det.Rect.Width), float64(det.Rect.Height))
	poseResult := pose.Solve(result.ArmorCorners, det.Size, cfg.Intrinsics, armorWidthPx)

	switch poseResult.Kind {
	case pose.FallbackNumericReject:
		result.Notes = append(result.Notes, PoseFallback)
		result.Confidence = math.Max(0, result.Confidence-10)
	case pose.FallbackSolverFailure:
		result.Notes = append(result.Notes, PoseInvalid, PoseFallback)
		result.Confidence = math.Max(0, result.Confidence-20)
	}

	if !poseResult.Solved {
		history.Push(result)
		return result
	}

	result.PositionSolved = true
	result.Position3D = poseResult.Position
	result.Rotation3D = poseResult.Rotation
	result.Distance3D = poseResult.DistanceCM

	horiz := geometry.HorizontalDistance(result.Position3D.X, result.Position3D.Z)
	result.YawAngle = geometry.ClampYawDeg(geometry.SafeAtan2Deg(result.Position3D.X, result.Position3D.Z, "yaw_angle", hook))
	result.PitchAngle = geometry.ClampPitchDeg(geometry.SafePitchDeg(result.Position3D.Y, horiz, "pitch_angle", hook))

	result.Stage = Predict
	prev, ok := history.Back()
	prevSample := tracking.PrevSample{}
	if ok {
		prevSample.Solved = prev.PositionSolved
		prevSample.Position = prev.Position3D
	}
	prediction := tracking.Predict(result.Position3D, result.Distance3D, prevSample, cfg.Ballistics.BulletSpeed, cfg.FlightTimeMode == config.CorrectedFlightTime)
	result.Velocity3D = prediction.Velocity
	result.PredictedPos = prediction.PredictedPos

	result.Stage = Ballistics
	ballSol := ballistics.Solve(result.PredictedPos, cfg.Ballistics, hook)
	result.FlightTime = ballSol.FlightTime
	result.BulletDrop = ballSol.BulletDrop
	result.FiringYaw = ballSol.FiringYaw
	result.FiringPitch = ballSol.FiringPitch

	result.Stage = Classify
	cls := o.Classifier.Classify()
	result.TargetID = cls.ID
	result.TargetPriority = cls.Priority
	result.IsValidTarget = targeting.Validate(cls, cfg.Validity)
	if !result.IsValidTarget {
		result.Notes = append(result.Notes, TargetInvalid)
	}

	result.Stage = Decide
	dec := targeting.Decide(result.Distance3D, result.Confidence, result.Velocity3D, result.IsValidTarget)
	result.HitProbability = dec.HitProbability
	result.CanFire = dec.CanFire

	history.Push(result)
	return result
}
