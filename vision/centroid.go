package vision

import (
	"image/color"

	"gocv.io/x/gocv"

	"github.com/LdDl/cvdemos/track"
)

// ComputeCentroid returns area-weighted centre of the set pixels of a binary mask
// or track.Sentinel for an empty mask.
func ComputeCentroid(mask gocv.Mat) track.Point {
	return track.Centroid(track.NewMomentsFrom(gocv.Moments(mask, true)))
}

// ContourCentroids finds outer contours of a binary mask and returns centroid of every contour.
// Contours without area are skipped.
func ContourCentroids(mask gocv.Mat) []track.Point {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	centers := make([]track.Point, 0, contours.Size())
	if contours.Size() == 0 {
		return centers
	}
	filled := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), mask.Rows(), mask.Cols(), gocv.MatTypeCV8U)
	defer filled.Close()
	for i := 0; i < contours.Size(); i++ {
		if i > 0 {
			filled.SetTo(gocv.NewScalar(0, 0, 0, 0))
		}
		gocv.DrawContours(&filled, contours, i, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
		center := ComputeCentroid(filled)
		if center.IsSentinel() {
			continue
		}
		centers = append(centers, center)
	}
	return centers
}
