// Package vision implements the color-mask detector, contour analyzer,
// and corner extractor: components B, C, and D of the targeting
// pipeline (spec.md §4.B-§4.D).
package vision

import (
	"image"

	"gocv.io/x/gocv"

	"autoaim/config"
)

// ColorMask converts frame (BGR) to HSV and thresholds it to the enemy
// color's range(s), then applies erosion followed by dilation with
// elliptical kernels, per spec.md §4.B. The caller owns the returned
// Mat and must Close it.
func ColorMask(frame gocv.Mat, enemy config.Color, params config.DetectionParams) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	switch enemy {
	case config.Red:
		lower1 := gocv.NewMat()
		defer lower1.Close()
		gocv.InRange(hsv, gocv.NewScalar(0, 100, 100, 0), gocv.NewScalar(10, 255, 255, 0), &lower1)

		lower2 := gocv.NewMat()
		defer lower2.Close()
		gocv.InRange(hsv, gocv.NewScalar(170, 100, 100, 0), gocv.NewScalar(180, 255, 255, 0), &lower2)

		gocv.BitwiseOr(lower1, lower2, &mask)
	default: // config.Blue
		gocv.InRange(hsv, gocv.NewScalar(100, 100, 100, 0), gocv.NewScalar(130, 255, 255, 0), &mask)
	}

	erodeKernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(params.ErosionSize, params.ErosionSize))
	defer erodeKernel.Close()
	gocv.Erode(mask, &mask, erodeKernel)

	dilateKernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(params.DilationSize, params.DilationSize))
	defer dilateKernel.Close()
	gocv.Dilate(mask, &mask, dilateKernel)

	return mask
}
