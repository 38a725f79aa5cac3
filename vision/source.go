package vision

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// DefaultCamera is the device opened when no video file is given
const DefaultCamera = 0

// ErrCaptureOpen is returned when neither camera nor video file could be opened
var ErrCaptureOpen = errors.New("capture cannot be created")

// Source yields frames one per tick. Read returns false when frame could not be read.
// *gocv.VideoCapture satisfies this interface.
type Source interface {
	Read(m *gocv.Mat) bool
	Close() error
}

// OpenSource opens video file at path or, if path is empty, the fallback
// (device number or file name)
func OpenSource(path string, fallback interface{}) (*gocv.VideoCapture, error) {
	var target interface{} = path
	if path == "" {
		target = fallback
	}
	capture, err := gocv.OpenVideoCapture(target)
	if err != nil {
		return nil, errors.Wrapf(ErrCaptureOpen, "source %v: %s", target, err.Error())
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, errors.Wrapf(ErrCaptureOpen, "source %v", target)
	}
	return capture, nil
}
