package vision

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"

	"github.com/LdDl/cvdemos/config"
)

// HSV is a colour in 8-bit OpenCV HSV ranges: H 0..180, S and V 0..255
type HSV struct {
	H float64
	S float64
	V float64
}

// Scalar converts colour to gocv.Scalar for thresholding
func (c HSV) Scalar() gocv.Scalar {
	return gocv.NewScalar(c.H, c.S, c.V, 0)
}

// Colorful converts OpenCV HSV to go-colorful representation (hue in degrees, S and V in 0..1)
func (c HSV) Colorful() colorful.Color {
	return colorful.Hsv(c.H*2.0, c.S/255.0, c.V/255.0)
}

// Hex returns "#rrggbb" form of the colour
func (c HSV) Hex() string {
	return c.Colorful().Hex()
}

// ColorInterval is lower/upper HSV bounds of a tracked colour class
type ColorInterval struct {
	Name  string
	Lower HSV
	Upper HSV
}

// HueInterval builds interval around hue with the given spread and S/V lower limits
func HueInterval(name string, hue, spread, minSaturation, minValue float64) ColorInterval {
	return ColorInterval{
		Name:  name,
		Lower: HSV{H: hue - spread, S: minSaturation, V: minValue},
		Upper: HSV{H: hue + spread, S: 255, V: 255},
	}
}

// IntervalFromCalibration converts slider values to interval
func IntervalFromCalibration(name string, cfg *config.Calibration) ColorInterval {
	lower := cfg.Lower()
	upper := cfg.Upper()
	return ColorInterval{
		Name:  name,
		Lower: HSV{H: lower[0], S: lower[1], V: lower[2]},
		Upper: HSV{H: upper[0], S: upper[1], V: upper[2]},
	}
}

// Mid returns centre of the interval
func (ci ColorInterval) Mid() HSV {
	return HSV{
		H: (ci.Lower.H + ci.Upper.H) / 2.0,
		S: (ci.Lower.S + ci.Upper.S) / 2.0,
		V: (ci.Lower.V + ci.Upper.V) / 2.0,
	}
}

// DisplayColor returns colour used to draw points of this class
func (ci ColorInterval) DisplayColor() color.RGBA {
	r, g, b := ci.Mid().Colorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var (
	// LimeInterval is the ball colour of the single ball demos
	LimeInterval = HueInterval("lime", 46, 20, 80, 80)

	// BlueInterval, GreenInterval and PinkInterval are the ball colours of the multi ball assignment
	BlueInterval = ColorInterval{
		Name:  "blue",
		Lower: HSV{H: 95, S: 160, V: 150},
		Upper: HSV{H: 110, S: 224, V: 237},
	}

	GreenInterval = ColorInterval{
		Name:  "green",
		Lower: HSV{H: 50, S: 115, V: 170},
		Upper: HSV{H: 70, S: 190, V: 244},
	}

	PinkInterval = ColorInterval{
		Name:  "pink",
		Lower: HSV{H: 167, S: 167, V: 230},
		Upper: HSV{H: 171, S: 220, V: 248},
	}
)
