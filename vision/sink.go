package vision

import (
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Sink presents a rendered frame under a name (window title, file name)
type Sink interface {
	Show(name string, img gocv.Mat) error
}

// KeyPoller waits up to delay milliseconds for a key press and returns its code or -1
type KeyPoller interface {
	WaitKey(delay int) int
}

// WindowSink shows frames in HighGUI windows, one window per name.
// Windows are created on first use.
type WindowSink struct {
	windows map[string]*gocv.Window
}

// NewWindowSink creates new instance of WindowSink
func NewWindowSink() *WindowSink {
	return &WindowSink{
		windows: make(map[string]*gocv.Window),
	}
}

// Window returns window with given title, creating it if needed
func (sink *WindowSink) Window(name string) *gocv.Window {
	if window, ok := sink.windows[name]; ok {
		return window
	}
	window := gocv.NewWindow(name)
	sink.windows[name] = window
	return window
}

// Show displays frame in window
func (sink *WindowSink) Show(name string, img gocv.Mat) error {
	sink.Window(name).IMShow(img)
	return nil
}

// WaitKey polls HighGUI event loop. It also paints pending frames
func (sink *WindowSink) WaitKey(delay int) int {
	return gocv.WaitKey(delay)
}

// Close destroys every window
func (sink *WindowSink) Close() error {
	for name, window := range sink.windows {
		if err := window.Close(); err != nil {
			return errors.Wrapf(err, "Can't close window %s", name)
		}
		delete(sink.windows, name)
	}
	return nil
}

// FileSink writes frames to image files inside Dir. Name is used as file name,
// so its extension picks the format.
type FileSink struct {
	Dir string
}

// NewFileSink creates new instance of FileSink. Directory is created if missing
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "Can't create output directory %s", dir)
	}
	return &FileSink{Dir: dir}, nil
}

// Show encodes frame to file
func (sink *FileSink) Show(name string, img gocv.Mat) error {
	frame, err := img.ToImage()
	if err != nil {
		return errors.Wrapf(err, "Can't convert frame %s", name)
	}
	path := filepath.Join(sink.Dir, name)
	if err := imaging.Save(frame, path); err != nil {
		return errors.Wrapf(err, "Can't save frame to %s", path)
	}
	return nil
}
