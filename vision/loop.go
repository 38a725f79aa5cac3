package vision

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

const (
	// KeyEsc quits the loop
	KeyEsc = 27
	// KeyClear clears accumulated tracks
	KeyClear = 'c'
	// DefaultDelay is key-poll timeout in milliseconds. It also throttles frame rate
	DefaultDelay = 30
)

// Processor handles one successfully read frame. Frame may be modified in place
type Processor interface {
	Process(frame *gocv.Mat) error
	// Clear drops any accumulated state (tracks). Called on KeyClear
	Clear()
}

// Refresher is implemented by processors which must redraw even when no new frame arrived
// (e.g. slider values changed while the video is over).
type Refresher interface {
	Refresh() error
}

// Loop is single threaded capture -> process -> display -> key poll cycle
type Loop struct {
	source    Source
	processor Processor
	keys      KeyPoller
	// Key poll timeout in milliseconds. Default is 30
	delay  int
	logger *zap.SugaredLogger
	// Counters of the session
	frames  int
	skipped int
}

// NewLoop creates new instance of Loop
func NewLoop(source Source, processor Processor, keys KeyPoller, delay int, logger *zap.SugaredLogger) *Loop {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loop{
		source:    source,
		processor: processor,
		keys:      keys,
		delay:     delay,
		logger:    logger,
	}
}

// Run loops until Esc is pressed. Failed reads are skipped:
// whatever was rendered last stays on screen.
func (loop *Loop) Run() error {
	img := gocv.NewMat()
	defer img.Close()
	for {
		if ok := loop.source.Read(&img); ok && !img.Empty() {
			loop.frames++
			if err := loop.processor.Process(&img); err != nil {
				return errors.Wrapf(err, "Can't process frame %d", loop.frames)
			}
		} else {
			loop.skipped++
			if loop.skipped == 1 {
				loop.logger.Debugw("Frame skipped (read failed or video ended)", "frames", loop.frames)
			}
			if refresher, ok := loop.processor.(Refresher); ok {
				if err := refresher.Refresh(); err != nil {
					return errors.Wrap(err, "Can't refresh view")
				}
			}
		}
		switch loop.keys.WaitKey(loop.delay) {
		case KeyEsc:
			loop.logger.Infow("Quit requested", "frames", loop.frames, "skipped", loop.skipped)
			return nil
		case KeyClear:
			loop.logger.Debugw("Clear requested", "frames", loop.frames)
			loop.processor.Clear()
		}
	}
}

// Frames returns number of processed frames
func (loop *Loop) Frames() int {
	return loop.frames
}

// Skipped returns number of failed reads
func (loop *Loop) Skipped() int {
	return loop.skipped
}
