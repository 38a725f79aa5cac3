// Package main accumulates centroids of the blue, green and pink balls.
package main

import (
	"github.com/urfave/cli/v2"

	"github.com/LdDl/cvdemos/internal/app"
	"github.com/LdDl/cvdemos/vision"
)

// defaultVideo is opened when no video file is given
const defaultVideo = "../balls05.mp4"

func main() {
	app.Main(&cli.App{
		Name:      "trackballs",
		Usage:     "accumulate centroids of every blue, green and pink ball",
		ArgsUsage: "[video file]",
		Flags:     append(app.CommonFlags(), app.ZoomFlag()),
		Action: func(c *cli.Context) error {
			logger := app.Logger(c)
			classes := vision.NewColorClasses(vision.BlueInterval, vision.GreenInterval, vision.PinkInterval)
			for _, class := range classes {
				logger.Debugw("Colour class", "name", class.Interval.Name, "id", class.ID.String(), "draw", class.Interval.Mid().Hex())
			}

			sink := vision.NewWindowSink()
			defer sink.Close()
			tracker := vision.NewBallsTracker(sink, app.WindowTitle, classes, c.Float64(app.FlagZoom))
			defer tracker.Close()
			session := &app.Session{
				Logger:   logger,
				Sink:     sink,
				Fallback: defaultVideo,
				Hint:     app.HintQuitOrClear,
			}
			if err := session.Run(c, tracker); err != nil {
				return err
			}
			for _, class := range classes {
				logger.Infow("Centroids accumulated", "name", class.Interval.Name, "count", len(tracker.PointsOf(class.ID)))
			}
			return nil
		},
	})
}
