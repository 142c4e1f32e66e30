package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"autoaim/config"
)

func drawArmor(w, h, cx, cy, hw, hh int, c color.RGBA) gocv.Mat {
	frame := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&frame, image.Rect(cx-hw, cy-hh, cx+hw, cy+hh), c, -1)
	return frame
}

func TestColorMaskAndContours_CenteredSmallArmor(t *testing.T) {
	// About 60x30 px: contour area about 1800, under the 2000 SizeBig cutoff.
	frame := drawArmor(640, 480, 320, 240, 30, 15, color.RGBA{0, 0, 255, 255}) // BGR red
	defer frame.Close()

	params := config.DefaultDetectionParams()
	mask := ColorMask(frame, config.Red, params)
	defer mask.Close()

	det := AnalyzeContours(mask, params)
	require.True(t, det.Found)
	assert.InDelta(t, 320, det.Center.X, 5)
	assert.InDelta(t, 240, det.Center.Y, 5)
	assert.Equal(t, config.SizeSmall, det.Size)
}

func TestColorMaskAndContours_WrongColorYieldsNoDetection(t *testing.T) {
	frame := drawArmor(640, 480, 320, 240, 40, 20, color.RGBA{255, 0, 0, 255}) // BGR blue
	defer frame.Close()

	params := config.DefaultDetectionParams()
	mask := ColorMask(frame, config.Red, params)
	defer mask.Close()

	det := AnalyzeContours(mask, params)
	assert.False(t, det.Found)
}

func TestAnalyzeContours_AreaBelowThresholdRejected(t *testing.T) {
	frame := drawArmor(200, 200, 100, 100, 4, 2, color.RGBA{0, 0, 255, 255})
	defer frame.Close()

	params := config.DefaultDetectionParams()
	params.AreaThreshold = 1000 // well above the tiny plate's area
	mask := ColorMask(frame, config.Red, params)
	defer mask.Close()

	det := AnalyzeContours(mask, params)
	assert.False(t, det.Found)
}

func TestAnalyzeContours_DegenerateContourNeverPanics(t *testing.T) {
	mask := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC1)
	defer mask.Close()

	det := AnalyzeContours(mask, config.DefaultDetectionParams())
	assert.False(t, det.Found)
}

func TestExtractCorners_LegacyOrderIsYThenXWithTolerance(t *testing.T) {
	frame := drawArmor(640, 480, 320, 240, 40, 20, color.RGBA{0, 0, 255, 255})
	defer frame.Close()

	params := config.DefaultDetectionParams()
	mask := ColorMask(frame, config.Red, params)
	defer mask.Close()

	det := AnalyzeContours(mask, params)
	require.True(t, det.Found)

	corners := ExtractCorners(det.Rect, config.LegacyCornerOrder)
	require.Len(t, corners, 4)
	// Axis-aligned rect: legacy order groups the two smaller-y corners
	// first, x-ascending within each row.
	assert.LessOrEqual(t, corners[0].Y, corners[2].Y)
	assert.LessOrEqual(t, corners[0].X, corners[1].X)
}

func TestExtractCorners_FixedOrderIsTLTRBRBL(t *testing.T) {
	frame := drawArmor(640, 480, 320, 240, 40, 20, color.RGBA{0, 0, 255, 255})
	defer frame.Close()

	params := config.DefaultDetectionParams()
	mask := ColorMask(frame, config.Red, params)
	defer mask.Close()

	det := AnalyzeContours(mask, params)
	require.True(t, det.Found)

	corners := ExtractCorners(det.Rect, config.FixedCornerOrder)
	assert.Less(t, corners[0].X, corners[1].X)   // TL left of TR
	assert.Less(t, corners[0].Y, corners[3].Y)   // TL above BL
	assert.Greater(t, corners[2].X, corners[3].X) // BR right of BL
}
