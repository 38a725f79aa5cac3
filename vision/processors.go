package vision

import (
	"image"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"github.com/LdDl/cvdemos/config"
	"github.com/LdDl/cvdemos/track"
)

// Display shows frames unchanged
type Display struct {
	sink   Sink
	window string
}

// NewDisplay creates new instance of Display
func NewDisplay(sink Sink, window string) *Display {
	return &Display{sink: sink, window: window}
}

// Process shows frame
func (d *Display) Process(frame *gocv.Mat) error {
	return d.sink.Show(d.window, *frame)
}

// Clear does nothing: Display keeps no state
func (d *Display) Clear() {}

// Tracer marks centroid of a single colour on every frame without remembering it
type Tracer struct {
	sink     Sink
	window   string
	interval ColorInterval
	// Last detected centroid (Sentinel if nothing was found)
	last track.Point
}

// NewTracer creates new instance of Tracer
func NewTracer(sink Sink, window string, interval ColorInterval) *Tracer {
	return &Tracer{
		sink:     sink,
		window:   window,
		interval: interval,
		last:     track.Sentinel,
	}
}

// Process traces ball and draws marker over it
func (tr *Tracer) Process(frame *gocv.Mat) error {
	mask := CreateMask(*frame, tr.interval, true)
	defer mask.Close()
	tr.last = ComputeCentroid(mask)
	DrawMarker(frame, tr.last, 10, Red, 10)
	return tr.sink.Show(tr.window, *frame)
}

// Clear does nothing: Tracer keeps no history
func (tr *Tracer) Clear() {}

// Last returns centroid found on the last processed frame
func (tr *Tracer) Last() track.Point {
	return tr.last
}

// BallTracker follows a single colour and draws its path.
// The path is dropped as soon as the ball is lost.
type BallTracker struct {
	sink     Sink
	window   string
	interval ColorInterval
	zoom     float64
	path     *track.Track
	// Optional. nil means raw centroids are stored
	smoother *track.Smoother
	resized  gocv.Mat
	logger   *zap.SugaredLogger
}

// NewBallTracker creates new instance of BallTracker. Pass nil smoother to disable path smoothing
func NewBallTracker(sink Sink, window string, interval ColorInterval, zoom float64, smoother *track.Smoother, logger *zap.SugaredLogger) *BallTracker {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	path := track.NewTrackDefault()
	logger.Debugw("Ball tracker created", "interval", interval.Name, "policy", path.Policy().String(), "zoom", zoom, "smooth", smoother != nil)
	return &BallTracker{
		sink:     sink,
		window:   window,
		interval: interval,
		zoom:     zoom,
		path:     path,
		smoother: smoother,
		resized:  gocv.NewMat(),
		logger:   logger,
	}
}

// Trace returns centroid of the tracked colour on frame
func (bt *BallTracker) Trace(frame gocv.Mat) track.Point {
	mask := CreateMask(frame, bt.interval, true)
	defer mask.Close()
	return ComputeCentroid(mask)
}

// Consider passes centroid through smoother (if any) and into the track
func (bt *BallTracker) Consider(point track.Point) error {
	if point.IsSentinel() {
		if bt.path.Len() > 0 {
			bt.logger.Debugw("Ball lost, track cleared", "points", bt.path.Len())
		}
		bt.path.Consider(point)
		if bt.smoother != nil {
			bt.smoother.Reset()
		}
		return nil
	}
	if bt.smoother != nil {
		smoothed, err := bt.smoother.Smooth(point)
		if err != nil {
			return errors.Wrap(err, "Can't smooth centroid")
		}
		point = smoothed
	}
	bt.path.Consider(point)
	return nil
}

// Process fits frame to screen, traces the ball and draws its track
func (bt *BallTracker) Process(frame *gocv.Mat) error {
	Resize(*frame, &bt.resized, bt.zoom)
	bt.path.SetRegion(image.Rect(0, 0, bt.resized.Cols(), bt.resized.Rows()))
	if err := bt.Consider(bt.Trace(bt.resized)); err != nil {
		return err
	}
	DrawTrack(&bt.resized, bt.path.Points(), Red, 3)
	return bt.sink.Show(bt.window, bt.resized)
}

// Clear drops the track
func (bt *BallTracker) Clear() {
	bt.path.Clear()
	if bt.smoother != nil {
		bt.smoother.Reset()
	}
}

// Track returns accepted points
func (bt *BallTracker) Track() []track.Point {
	return bt.path.Points()
}

// Close releases internal buffers
func (bt *BallTracker) Close() error {
	return bt.resized.Close()
}

// ColorClass is a colour interval with identity used in MultiTrack
type ColorClass struct {
	ID       track.ClassID
	Interval ColorInterval
}

// NewColorClasses assigns identifiers to intervals
func NewColorClasses(intervals ...ColorInterval) []ColorClass {
	classes := make([]ColorClass, len(intervals))
	for i, interval := range intervals {
		classes[i] = ColorClass{
			ID:       track.NewClassID(),
			Interval: interval,
		}
	}
	return classes
}

// BallsTracker finds every ball of several colours and accumulates their centroids.
// Accumulated points are kept until cleared by user.
type BallsTracker struct {
	sink    Sink
	window  string
	classes []ColorClass
	colors  map[track.ClassID]ColorClass
	zoom    float64
	history *track.MultiTrack
	resized gocv.Mat
}

// NewBallsTracker creates new instance of BallsTracker
func NewBallsTracker(sink Sink, window string, classes []ColorClass, zoom float64) *BallsTracker {
	colors := make(map[track.ClassID]ColorClass, len(classes))
	for _, class := range classes {
		colors[class.ID] = class
	}
	return &BallsTracker{
		sink:    sink,
		window:  window,
		classes: classes,
		colors:  colors,
		zoom:    zoom,
		history: track.NewMultiTrack(),
		resized: gocv.NewMat(),
	}
}

// TraceBalls returns centroid of every blob of the given colour
func (bt *BallsTracker) TraceBalls(frame gocv.Mat, interval ColorInterval) []track.Point {
	mask := CreateMask(frame, interval, true)
	defer mask.Close()
	return ContourCentroids(mask)
}

// Process accumulates centroids of all classes and draws every remembered centroid
func (bt *BallsTracker) Process(frame *gocv.Mat) error {
	Resize(*frame, &bt.resized, bt.zoom)
	for _, class := range bt.classes {
		bt.history.ConsiderFrame(class.ID, bt.TraceBalls(bt.resized, class.Interval))
	}
	for _, entry := range bt.history.Entries() {
		DrawMarker(&bt.resized, entry.Point, 2, bt.colors[entry.Class].Interval.DisplayColor(), 3)
	}
	return bt.sink.Show(bt.window, bt.resized)
}

// Clear drops accumulated centroids
func (bt *BallsTracker) Clear() {
	bt.history.Clear()
}

// History returns accumulated centroids in insertion order
func (bt *BallsTracker) History() []track.Entry {
	return bt.history.Entries()
}

// PointsOf returns accumulated centroids of one colour class
func (bt *BallsTracker) PointsOf(class track.ClassID) []track.Point {
	return bt.history.PointsOf(class)
}

// Close releases internal buffers
func (bt *BallsTracker) Close() error {
	return bt.resized.Close()
}

// Sliders provides live threshold values
type Sliders interface {
	Values() config.Calibration
}

// ThresholdViewer shows only the pixels of a frame that fall inside slider interval
type ThresholdViewer struct {
	sink    Sink
	window  string
	sliders Sliders
	// Last good frame. Shown again when reading fails
	last gocv.Mat
}

// NewThresholdViewer creates new instance of ThresholdViewer
func NewThresholdViewer(sink Sink, window string, sliders Sliders) *ThresholdViewer {
	return &ThresholdViewer{
		sink:    sink,
		window:  window,
		sliders: sliders,
		last:    gocv.NewMat(),
	}
}

// Process remembers frame and renders it
func (tv *ThresholdViewer) Process(frame *gocv.Mat) error {
	frame.CopyTo(&tv.last)
	return tv.Refresh()
}

// Refresh renders last good frame with current slider values
func (tv *ThresholdViewer) Refresh() error {
	if tv.last.Empty() {
		return nil
	}
	result := tv.Render(tv.last)
	defer result.Close()
	return tv.sink.Show(tv.window, result)
}

// Render masks frame with current interval (no cleaning). Caller owns the result
func (tv *ThresholdViewer) Render(frame gocv.Mat) gocv.Mat {
	values := tv.sliders.Values()
	mask := CreateMask(frame, IntervalFromCalibration("sliders", &values), false)
	defer mask.Close()
	result := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), frame.Rows(), frame.Cols(), frame.Type())
	gocv.BitwiseAndWithMask(frame, frame, &result, mask)
	return result
}

// Clear does nothing: ThresholdViewer keeps no history
func (tv *ThresholdViewer) Clear() {}

// Close releases last frame
func (tv *ThresholdViewer) Close() error {
	return tv.last.Close()
}

// TrackbarSliders are six HighGUI trackbars of a window
type TrackbarSliders struct {
	lowerH *gocv.Trackbar
	lowerS *gocv.Trackbar
	lowerV *gocv.Trackbar
	upperH *gocv.Trackbar
	upperS *gocv.Trackbar
	upperV *gocv.Trackbar
}

// NewTrackbarSliders creates trackbars on window and sets their positions from initial calibration
func NewTrackbarSliders(window *gocv.Window, initial *config.Calibration) *TrackbarSliders {
	create := func(name string, max, pos int) *gocv.Trackbar {
		tb := window.CreateTrackbar(name, max)
		tb.SetPos(pos)
		return tb
	}
	return &TrackbarSliders{
		lowerH: create("Lower H", config.MaxHue, initial.LowerH),
		lowerS: create("Lower S", config.MaxSaturation, initial.LowerS),
		lowerV: create("Lower V", config.MaxValue, initial.LowerV),
		upperH: create("Upper H", config.MaxHue, initial.UpperH),
		upperS: create("Upper S", config.MaxSaturation, initial.UpperS),
		upperV: create("Upper V", config.MaxValue, initial.UpperV),
	}
}

// Values reads current trackbar positions
func (ts *TrackbarSliders) Values() config.Calibration {
	return config.Calibration{
		LowerH: ts.lowerH.GetPos(),
		LowerS: ts.lowerS.GetPos(),
		LowerV: ts.lowerV.GetPos(),
		UpperH: ts.upperH.GetPos(),
		UpperS: ts.upperS.GetPos(),
		UpperV: ts.upperV.GetPos(),
	}
}
