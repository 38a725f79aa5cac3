// Package app holds flags and the capture session shared by the demo programs.
package app

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/LdDl/cvdemos/config"
	"github.com/LdDl/cvdemos/logging"
	"github.com/LdDl/cvdemos/vision"
)

const (
	// WindowTitle is the title of the main window of every live demo
	WindowTitle = "FIU-EML4840: Image"

	// Flags.
	FlagDebug       = "debug"
	FlagDelay       = "delay"
	FlagZoom        = "zoom"
	FlagCalibration = "calibration"

	// HintQuit is printed by demos without tracks
	HintQuit = "Press 'Esc' to quit..."
	// HintQuitOrClear is printed by the trackers
	HintQuitOrClear = "Press 'Esc' to quit (or 'c' to clear tracks)..."
)

// CommonFlags are accepted by every live demo
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: "enable debug logging",
		},
		&cli.IntFlag{
			Name:  FlagDelay,
			Value: vision.DefaultDelay,
			Usage: "key poll timeout in `MILLISECONDS`",
		},
	}
}

// ZoomFlag scales frames before they are processed
func ZoomFlag() cli.Flag {
	return &cli.Float64Flag{
		Name:  FlagZoom,
		Value: 0.75,
		Usage: "frame scale `FACTOR` applied before processing",
	}
}

// CalibrationFlag points to JSON file with HSV slider values
func CalibrationFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:  FlagCalibration,
		Usage: usage,
	}
}

// InitialCalibration loads --calibration file when the flag is given, defaults otherwise
func InitialCalibration(c *cli.Context) (*config.Calibration, error) {
	if !c.IsSet(FlagCalibration) {
		return config.DefaultCalibration(), nil
	}
	cfg, err := config.LoadCalibration(c.String(FlagCalibration))
	if err != nil {
		return nil, errors.Wrap(err, "Can't load calibration")
	}
	return cfg, nil
}

// SaveCalibration writes cfg to --calibration file. Nothing is written without the flag.
// Returns true if file was written.
func SaveCalibration(c *cli.Context, cfg *config.Calibration) (bool, error) {
	if !c.IsSet(FlagCalibration) {
		return false, nil
	}
	if err := cfg.Save(c.String(FlagCalibration)); err != nil {
		return false, err
	}
	return true, nil
}

// Logger creates named logger honouring --debug and logs the course banner
func Logger(c *cli.Context) *zap.SugaredLogger {
	logger := logging.NewLogger(c.App.Name, c.Bool(FlagDebug))
	logging.Banner(logger)
	return logger
}

// Session runs a processor over the capture given as first positional argument
// (or the fallback when there is none) until Esc is pressed.
type Session struct {
	Logger   *zap.SugaredLogger
	Sink     *vision.WindowSink
	Fallback interface{}
	Hint     string
}

// Run opens capture, runs the loop and releases capture. Windows stay open for the caller.
// Capture open failure is returned as cli exit error with status 1.
func (s *Session) Run(c *cli.Context, processor vision.Processor) error {
	capture, err := vision.OpenSource(c.Args().First(), s.Fallback)
	if err != nil {
		s.Logger.Errorw("Ops, capture cannot be created!", "error", err)
		return cli.Exit(err.Error(), 1)
	}
	defer capture.Close()

	s.Logger.Info(s.Hint)
	loop := vision.NewLoop(capture, processor, s.Sink, c.Int(FlagDelay), s.Logger)
	if err := loop.Run(); err != nil {
		return errors.Wrap(err, "Session failed")
	}
	s.Logger.Debugw("Session finished", "frames", loop.Frames(), "skipped", loop.Skipped())
	return nil
}

// Main runs cli application and exits with status 1 on error
func Main(a *cli.App) {
	if err := a.Run(os.Args); err != nil {
		logging.NewLogger(a.Name, false).Fatal(err)
	}
}
