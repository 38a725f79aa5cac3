// Package main shows camera (or video file) frames as they are.
package main

import (
	"github.com/urfave/cli/v2"

	"github.com/LdDl/cvdemos/internal/app"
	"github.com/LdDl/cvdemos/vision"
)

func main() {
	app.Main(&cli.App{
		Name:      "hellocv",
		Usage:     "display camera frames",
		ArgsUsage: "[video file]",
		Flags:     app.CommonFlags(),
		Action: func(c *cli.Context) error {
			sink := vision.NewWindowSink()
			defer sink.Close()
			session := &app.Session{
				Logger:   app.Logger(c),
				Sink:     sink,
				Fallback: vision.DefaultCamera,
				Hint:     app.HintQuit,
			}
			return session.Run(c, vision.NewDisplay(sink, "Image"))
		},
	})
}
