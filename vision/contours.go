package vision

import (
	"image"
	"math"

	"gocv.io/x/gocv"

	"autoaim/config"
	"autoaim/geometry"
)

// Detection is the contour analyzer's output: the best-scoring candidate
// blob, or the zero value with Found=false when none qualified.
type Detection struct {
	Found      bool
	BBox       image.Rectangle
	Center     geometry.Vector2
	Confidence float64
	Size       config.ArmorSize
	Rect       gocv.RotatedRect
}

// AnalyzeContours implements spec.md §4.C: it enumerates the mask's outer
// contours, rejects those below the area threshold or outside the
// configured aspect-ratio band, scores the rest, and returns the
// highest-scoring candidate. Ties break toward the lowest contour index
// because a strict '>' comparison never replaces an existing leader.
func AnalyzeContours(mask gocv.Mat, params config.DetectionParams) Detection {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	bestScore := 0.0
	bestIdx := -1
	var bestRect gocv.RotatedRect

	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		area := gocv.ContourArea(contour)
		if area < params.AreaThreshold {
			continue
		}

		rect := gocv.MinAreaRect(contour)
		long := math.Max(float64(rect.Width), float64(rect.Height))
		short := math.Min(float64(rect.Width), float64(rect.Height))
		if short <= 0 {
			continue
		}
		aspect := long / short
		if aspect < params.AspectRatioMin || aspect > params.AspectRatioMax {
			continue
		}

		score := area / (aspect * 100)
		if score > bestScore {
			bestScore = score
			bestIdx = i
			bestRect = rect
		}
	}

	if bestIdx < 0 {
		return Detection{Found: false}
	}

	area := gocv.ContourArea(contours.At(bestIdx))
	size := config.SizeSmall
	if area > 2000 {
		size = config.SizeBig
	}

	return Detection{
		Found:      true,
		BBox:       bestRect.BoundingRect,
		Center:     geometry.Vector2{X: float64(bestRect.Center.X), Y: float64(bestRect.Center.Y)},
		Confidence: math.Min(100, bestScore/10),
		Size:       size,
		Rect:       bestRect,
	}
}
