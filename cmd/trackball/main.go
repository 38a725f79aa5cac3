// Package main tracks a single ball and draws its path.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/LdDl/cvdemos/config"
	"github.com/LdDl/cvdemos/internal/app"
	"github.com/LdDl/cvdemos/track"
	"github.com/LdDl/cvdemos/vision"
)

const flagSmooth = "smooth"

// interval picks the lime preset unless calibration file is given
func interval(path string) (vision.ColorInterval, error) {
	if path == "" {
		return vision.LimeInterval, nil
	}
	// Missing file would load pass-all defaults
	if _, err := os.Stat(path); err != nil {
		return vision.ColorInterval{}, errors.Wrapf(err, "Can't find calibration %s", path)
	}
	cfg, err := config.LoadCalibration(path)
	if err != nil {
		return vision.ColorInterval{}, errors.Wrap(err, "Can't load calibration")
	}
	return vision.IntervalFromCalibration("calibrated", cfg), nil
}

func main() {
	flags := append(app.CommonFlags(),
		app.ZoomFlag(),
		&cli.BoolFlag{
			Name:  flagSmooth,
			Usage: "smooth the path with Kalman filter",
		},
		app.CalibrationFlag("track colour from calibration `FILE` (written by selectthreshold) instead of lime"),
	)
	app.Main(&cli.App{
		Name:      "trackball",
		Usage:     "track a ball and draw its path",
		ArgsUsage: "[video file]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			logger := app.Logger(c)
			target, err := interval(c.String(app.FlagCalibration))
			if err != nil {
				return err
			}
			var smoother *track.Smoother
			if c.Bool(flagSmooth) {
				smoother = track.NewSmootherDefault()
			}
			logger.Debugw("Tracking", "interval", target.Name, "lower", target.Lower.Hex(), "upper", target.Upper.Hex(), "smooth", smoother != nil)

			sink := vision.NewWindowSink()
			defer sink.Close()
			tracker := vision.NewBallTracker(sink, app.WindowTitle, target, c.Float64(app.FlagZoom), smoother, logger)
			defer tracker.Close()
			session := &app.Session{
				Logger:   logger,
				Sink:     sink,
				Fallback: vision.DefaultCamera,
				Hint:     app.HintQuitOrClear,
			}
			return session.Run(c, tracker)
		},
	})
}
