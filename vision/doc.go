// Package vision wires OpenCV (through gocv) into the classroom demos.
//
// Image work is delegated to the library: colour conversion, interval
// thresholding, erosion/dilation, moments, contours and drawing. The package
// adds the glue around it:
//
//   - CreateMask, ComputeCentroid and ContourCentroids: the fixed mask pipeline
//     and centroid extraction (see package track for the centroid rule).
//   - Source and OpenSource: camera or video file.
//   - Sink: where rendered frames go. WindowSink shows HighGUI windows,
//     FileSink writes image files.
//   - Loop: capture -> process -> display -> key poll. Esc quits, 'c' clears.
//   - Processors: Display, Tracer, BallTracker, BallsTracker and ThresholdViewer.
//     Each one owns its own state for the lifetime of a capture session.
//
// Colours are BGR on the OpenCV side. Intervals use 8-bit OpenCV HSV ranges
// (H 0..180, S and V 0..255).
package vision
