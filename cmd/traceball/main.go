// Package main marks the lime ball on every frame.
package main

import (
	"github.com/urfave/cli/v2"

	"github.com/LdDl/cvdemos/internal/app"
	"github.com/LdDl/cvdemos/vision"
)

func main() {
	app.Main(&cli.App{
		Name:      "traceball",
		Usage:     "mark centroid of the lime ball",
		ArgsUsage: "[video file]",
		Flags:     app.CommonFlags(),
		Action: func(c *cli.Context) error {
			sink := vision.NewWindowSink()
			defer sink.Close()
			logger := app.Logger(c)
			logger.Debugw("Tracing", "interval", vision.LimeInterval.Name, "lower", vision.LimeInterval.Lower.Hex(), "upper", vision.LimeInterval.Upper.Hex())
			session := &app.Session{
				Logger:   logger,
				Sink:     sink,
				Fallback: vision.DefaultCamera,
				Hint:     app.HintQuit,
			}
			return session.Run(c, vision.NewTracer(sink, app.WindowTitle, vision.LimeInterval))
		},
	})
}
