package track

// MomentEpsilon is the area below which a mask is treated as empty
const MomentEpsilon = 1e-4

// Moments holds zeroth and first order image moments of a mask.
// Values are produced by the vision library (see vision.ComputeCentroid).
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
}

// NewMomentsFrom picks "m00", "m10" and "m01" out of the map form returned by gocv.Moments
func NewMomentsFrom(m map[string]float64) Moments {
	return Moments{
		M00: m["m00"],
		M10: m["m10"],
		M01: m["m01"],
	}
}

// Centroid returns area-weighted centre (m10/m00, m01/m00) truncated to pixels.
// Sentinel is returned when m00 is not above MomentEpsilon.
func Centroid(m Moments) Point {
	if m.M00 <= MomentEpsilon {
		return Sentinel
	}
	return Point{
		X: int(m.M10 / m.M00),
		Y: int(m.M01 / m.M00),
	}
}
