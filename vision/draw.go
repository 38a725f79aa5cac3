package vision

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/LdDl/cvdemos/track"
)

var (
	// Red is colour of track polylines, centroid markers and contours
	Red = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Resize scales src by factor into dst. Factor 1.0 (or non-positive) copies frame as is
func Resize(src gocv.Mat, dst *gocv.Mat, factor float64) {
	if factor <= 0 || factor == 1.0 {
		src.CopyTo(dst)
		return
	}
	size := image.Pt(int(factor*float64(src.Cols())), int(factor*float64(src.Rows())))
	gocv.Resize(src, dst, size, 0, 0, gocv.InterpolationLinear)
}

// DrawTrack draws open polyline through points of the track
func DrawTrack(img *gocv.Mat, points []track.Point, c color.RGBA, thickness int) {
	if len(points) == 0 {
		return
	}
	line := make([]image.Point, len(points))
	for i, p := range points {
		line[i] = p.ImagePoint()
	}
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{line})
	defer pv.Close()
	gocv.Polylines(img, pv, false, c, thickness)
}

// DrawMarker draws circle at point. Sentinel is not drawn
func DrawMarker(img *gocv.Mat, point track.Point, radius int, c color.RGBA, thickness int) {
	if point.IsSentinel() {
		return
	}
	gocv.Circle(img, point.ImagePoint(), radius, c, thickness)
}
