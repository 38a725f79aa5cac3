// Package main is the HSV threshold tuning tool: six sliders select the interval
// and only the pixels inside it are shown.
package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/LdDl/cvdemos/internal/app"
	"github.com/LdDl/cvdemos/vision"
)

const window = "Threshold"

func main() {
	flags := append(app.CommonFlags(), app.CalibrationFlag("load sliders from calibration `FILE` and save them back on exit"))
	app.Main(&cli.App{
		Name:      "selectthreshold",
		Usage:     "tune HSV interval with sliders",
		ArgsUsage: "[video file]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			logger := app.Logger(c)
			initial, err := app.InitialCalibration(c)
			if err != nil {
				return errors.Wrap(err, "Can't prepare sliders")
			}

			sink := vision.NewWindowSink()
			defer sink.Close()
			sliders := vision.NewTrackbarSliders(sink.Window(window), initial)
			viewer := vision.NewThresholdViewer(sink, window, sliders)
			defer viewer.Close()
			session := &app.Session{
				Logger:   logger,
				Sink:     sink,
				Fallback: vision.DefaultCamera,
				Hint:     app.HintQuit,
			}
			if err := session.Run(c, viewer); err != nil {
				return err
			}

			selected := sliders.Values()
			interval := vision.IntervalFromCalibration("selected", &selected)
			logger.Infow("Selected interval",
				"lower", interval.Lower, "upper", interval.Upper,
				"lower_hex", interval.Lower.Hex(), "upper_hex", interval.Upper.Hex(),
			)
			saved, err := app.SaveCalibration(c, &selected)
			if err != nil {
				return err
			}
			if saved {
				logger.Infow("Calibration saved", "file", c.String(app.FlagCalibration))
			}
			return nil
		},
	})
}
