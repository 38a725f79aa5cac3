package vision

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

var (
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// pureBlueInterval matches BGR (255, 0, 0) which is hue 120 in OpenCV HSV
var pureBlueInterval = HueInterval("pure blue", 120, 10, 80, 80)

// createBlackFrame creates black BGR frame
func createBlackFrame(t *testing.T, width, height int) gocv.Mat {
	t.Helper()
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
}

// createBlankMask creates single channel all-zero mask
func createBlankMask(t *testing.T, width, height int) gocv.Mat {
	t.Helper()
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8U)
}

// fillRect draws filled rectangle
func fillRect(img *gocv.Mat, rect image.Rectangle, c color.RGBA) {
	gocv.Rectangle(img, rect, c, -1)
}

// createBallFrame creates black frame with one filled square per rect, all of the same colour
func createBallFrame(t *testing.T, width, height int, c color.RGBA, rects ...image.Rectangle) gocv.Mat {
	t.Helper()
	img := createBlackFrame(t, width, height)
	for _, rect := range rects {
		fillRect(&img, rect, c)
	}
	return img
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// recordingSink remembers names of shown frames
type recordingSink struct {
	names []string
}

func (s *recordingSink) Show(name string, img gocv.Mat) error {
	s.names = append(s.names, name)
	return nil
}
