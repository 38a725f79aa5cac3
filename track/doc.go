// Package track holds the application side of ball tracking: turning mask
// moments into a centroid and remembering accepted centroids as a path.
//
// Everything here is plain Go; image operations (colour conversion,
// thresholding, morphology, moments) live in package vision.
//
// Point{-1, -1} (Sentinel) means "nothing detected on this frame".
// Track keeps a single target path and, by default, forgets it as soon as
// the target is lost. MultiTrack keeps points of several colour classes and
// is only emptied on request.
package track
