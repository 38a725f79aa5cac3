package track

import (
	"image"
	"math"
)

// Point is a pixel position of a detected centroid
type Point struct {
	X int
	Y int
}

// Sentinel is reported when nothing was detected on a frame
var Sentinel = Point{X: -1, Y: -1}

func NewPoint(x, y int) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// ImagePoint converts point to image.Point (handy for drawing)
func (p Point) ImagePoint() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// IsSentinel returns true if point denotes "no detection".
// Any negative coordinate counts: it can't be a pixel of a frame.
func (p Point) IsSentinel() bool {
	return p.X < 0 || p.Y < 0
}

// In reports whether point lies inside rectangle. Empty rectangle means "everywhere"
func (p Point) In(region image.Rectangle) bool {
	if region.Empty() {
		return true
	}
	return p.ImagePoint().In(region)
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(float64(p1.X-p2.X), 2) + math.Pow(float64(p1.Y-p2.Y), 2))
}
