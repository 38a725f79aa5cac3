package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// MaxHue is upper limit of hue channel in 8-bit HSV images (OpenCV convention)
	MaxHue = 180
	// MaxSaturation is upper limit of saturation channel
	MaxSaturation = 255
	// MaxValue is upper limit of value channel
	MaxValue = 255
)

// Calibration is the set of six HSV slider values of the threshold tool.
// The same JSON file can be passed to the trackers to follow a calibrated colour.
type Calibration struct {
	LowerH int `json:"lower_h"`
	LowerS int `json:"lower_s"`
	LowerV int `json:"lower_v"`
	UpperH int `json:"upper_h"`
	UpperS int `json:"upper_s"`
	UpperV int `json:"upper_v"`
}

// DefaultCalibration returns interval which lets every pixel through
func DefaultCalibration() *Calibration {
	return &Calibration{
		LowerH: 0,
		LowerS: 0,
		LowerV: 0,
		UpperH: MaxHue,
		UpperS: MaxSaturation,
		UpperV: MaxValue,
	}
}

// LoadCalibration reads calibration from JSON file.
// Missing file is not an error: defaults are returned so first run of the tool works.
// Fields omitted from the file keep their default values.
func LoadCalibration(path string) (*Calibration, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, errors.Errorf("calibration file must have .json extension, got %q", ext)
	}
	cfg := DefaultCalibration()
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "Can't read calibration file")
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "Can't parse calibration JSON")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid calibration")
	}
	return cfg, nil
}

// Save writes calibration to JSON file
func (c *Calibration) Save(path string) error {
	encoded, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return errors.Wrap(err, "Can't encode calibration")
	}
	if err := os.WriteFile(filepath.Clean(path), encoded, 0o644); err != nil {
		return errors.Wrapf(err, "Can't write calibration to %s", path)
	}
	return nil
}

// Validate checks that every value lies in its channel range
func (c *Calibration) Validate() error {
	channels := []struct {
		name  string
		value int
		max   int
	}{
		{"lower_h", c.LowerH, MaxHue},
		{"lower_s", c.LowerS, MaxSaturation},
		{"lower_v", c.LowerV, MaxValue},
		{"upper_h", c.UpperH, MaxHue},
		{"upper_s", c.UpperS, MaxSaturation},
		{"upper_v", c.UpperV, MaxValue},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > ch.max {
			return errors.Errorf("%s must be between 0 and %d, got %d", ch.name, ch.max, ch.value)
		}
	}
	return nil
}

// Lower returns lower bound as H, S, V
func (c *Calibration) Lower() [3]float64 {
	return [3]float64{float64(c.LowerH), float64(c.LowerS), float64(c.LowerV)}
}

// Upper returns upper bound as H, S, V
func (c *Calibration) Upper() [3]float64 {
	return [3]float64{float64(c.UpperH), float64(c.UpperS), float64(c.UpperV)}
}
