package vision

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LdDl/cvdemos/config"
)

func TestHSVHex(t *testing.T) {
	cases := []struct {
		hsv      HSV
		expected string
	}{
		{HSV{H: 0, S: 255, V: 255}, "#ff0000"},
		{HSV{H: 60, S: 255, V: 255}, "#00ff00"},
		{HSV{H: 120, S: 255, V: 255}, "#0000ff"},
		{HSV{H: 0, S: 0, V: 0}, "#000000"},
	}
	for _, c := range cases {
		if hex := c.hsv.Hex(); hex != c.expected {
			t.Errorf("Wrong hex for %+v: %s, correct: %s", c.hsv, hex, c.expected)
		}
	}
}

func TestHueInterval(t *testing.T) {
	interval := HueInterval("lime", 46, 20, 80, 80)
	expected := ColorInterval{
		Name:  "lime",
		Lower: HSV{H: 26, S: 80, V: 80},
		Upper: HSV{H: 66, S: 255, V: 255},
	}
	if diff := cmp.Diff(expected, interval); diff != "" {
		t.Errorf("unexpected interval (-want +got):\n%s", diff)
	}
	if mid := interval.Mid(); mid.H != 46 {
		t.Errorf("Wrong mid hue: %f, correct: %f", mid.H, 46.0)
	}
}

func TestIntervalFromCalibration(t *testing.T) {
	cfg := &config.Calibration{LowerH: 10, LowerS: 20, LowerV: 30, UpperH: 40, UpperS: 50, UpperV: 60}
	interval := IntervalFromCalibration("calibrated", cfg)
	expected := ColorInterval{
		Name:  "calibrated",
		Lower: HSV{H: 10, S: 20, V: 30},
		Upper: HSV{H: 40, S: 50, V: 60},
	}
	if diff := cmp.Diff(expected, interval); diff != "" {
		t.Errorf("unexpected interval (-want +got):\n%s", diff)
	}
}

func TestDisplayColor(t *testing.T) {
	lime := LimeInterval.DisplayColor()
	if lime.G <= lime.R || lime.G <= lime.B {
		t.Errorf("lime should be drawn greenish, got %+v", lime)
	}
	pureBlue := pureBlueInterval.DisplayColor()
	if pureBlue.B <= pureBlue.R || pureBlue.B <= pureBlue.G {
		t.Errorf("blue should be drawn bluish, got %+v", pureBlue)
	}
	if pink := PinkInterval.DisplayColor(); pink.R <= pink.G {
		t.Errorf("pink should be drawn reddish, got %+v", pink)
	}
	if lime.A != 255 {
		t.Errorf("display colour should be opaque")
	}
}
