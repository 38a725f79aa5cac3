// Package main shows (and writes) every stage of contour extraction of a still image.
package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gocv.io/x/gocv"

	"github.com/LdDl/cvdemos/internal/app"
	"github.com/LdDl/cvdemos/vision"
)

const (
	flagImage     = "image"
	flagOut       = "out"
	flagThreshold = "threshold"
)

func main() {
	app.Main(&cli.App{
		Name:  "findcontours",
		Usage: "find contours of a still image stage by stage",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  app.FlagDebug,
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagImage,
				Value: "../shapes.jpg",
				Usage: "input image `FILE`",
			},
			&cli.StringFlag{
				Name:  flagOut,
				Value: ".",
				Usage: "`DIR` for stage images",
			},
			&cli.Float64Flag{
				Name:  flagThreshold,
				Value: 60,
				Usage: "binary threshold of the blurred gray image",
			},
		},
		Action: func(c *cli.Context) error {
			logger := app.Logger(c)
			img := gocv.IMRead(c.String(flagImage), gocv.IMReadColor)
			defer img.Close()
			if img.Empty() {
				logger.Errorw("Could not read the image!", "file", c.String(flagImage))
				return cli.Exit("could not read the image "+c.String(flagImage), 1)
			}

			files, err := vision.NewFileSink(c.String(flagOut))
			if err != nil {
				return err
			}
			display := vision.NewWindowSink()
			defer display.Close()

			stages := vision.NewContourStagesDefault()
			stages.Threshold = float32(c.Float64(flagThreshold))
			n, err := stages.Run(&img, display, files)
			if err != nil {
				return errors.Wrap(err, "Can't find contours")
			}
			logger.Infow("Contours found", "count", n, "dir", files.Dir)
			logger.Info("Press any key to quit...")
			display.WaitKey(0)
			return nil
		},
	})
}
