// Package frame provides the frame source collaborator spec.md §6 treats
// as an opaque producer outside the core pipeline: a simulated
// battlefield generator and a live-camera wrapper, both built on gocv
// exactly as the teacher repo drives its own RTSP capture loop.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"autoaim/config"
)

// Source produces BGR frames for the pipeline to consume. NextFrame
// returns ok=false when no frame is currently available (e.g. the
// camera stalled); the orchestrator treats that as "skip this tick",
// never as an error.
type Source interface {
	NextFrame() (gocv.Mat, bool)
	Close() error
}

// SimulatedSource procedurally animates a single colored armor plate
// across a synthetic frame, adapted from original_source's
// createSimulatedFrame: an axis-aligned rectangle moving around the frame
// center.
type SimulatedSource struct {
	Width, Height int
	EnemyColor    func() config.Color // read fresh each frame so 't' toggles take effect
	t             float64
}

// NewSimulatedSource returns a 640x480 simulated source tracking
// colorFn's current value each frame.
func NewSimulatedSource(colorFn func() config.Color) *SimulatedSource {
	return &SimulatedSource{Width: 640, Height: 480, EnemyColor: colorFn}
}

// NextFrame always succeeds for a simulated source.
func (s *SimulatedSource) NextFrame() (gocv.Mat, bool) {
	s.t += 0.05

	img := gocv.NewMatWithSize(s.Height, s.Width, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&img, image.Rect(0, 0, s.Width, s.Height), color.RGBA{40, 40, 40, 255}, -1)

	cx := s.Width/2 + int(150*math.Sin(s.t))
	cy := s.Height/2 + int(100*math.Cos(s.t*0.7))

	plateColor := color.RGBA{0, 0, 255, 255} // BGR red
	if s.EnemyColor() == config.Blue {
		plateColor = color.RGBA{255, 0, 0, 255} // BGR blue
	}

	halfW, halfH := 40, 20
	gocv.Rectangle(&img, image.Rect(cx-halfW, cy-halfH, cx+halfW, cy+halfH), plateColor, -1)

	return img, true
}

// Close is a no-op; the simulated source owns no external resource.
func (s *SimulatedSource) Close() error { return nil }

// CameraSource wraps a gocv.VideoCapture, adapted from the teacher's own
// capture loop (NOLO.go's `cap >> frame`).
type CameraSource struct {
	cap *gocv.VideoCapture
}

// OpenCamera opens deviceID (or an RTSP/file URL) for capture.
func OpenCamera(source string) (*CameraSource, error) {
	cap, err := gocv.OpenVideoCapture(source)
	if err != nil {
		return nil, fmt.Errorf("open video capture %q: %w", source, err)
	}
	return &CameraSource{cap: cap}, nil
}

// NextFrame reads the next frame; ok is false on an empty read, mirroring
// the teacher's "camera frame empty" handling.
func (c *CameraSource) NextFrame() (gocv.Mat, bool) {
	img := gocv.NewMat()
	if !c.cap.Read(&img) || img.Empty() {
		img.Close()
		return gocv.NewMat(), false
	}
	return img, true
}

// Close releases the underlying capture device.
func (c *CameraSource) Close() error {
	return c.cap.Close()
}
