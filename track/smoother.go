package track

import (
	"math"

	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// Smoother filters accepted centroids with 2D Kalman filter so drawn path does not jitter
type Smoother struct {
	dt float64
	// If raw point jumps farther than this (pixels) filter is re-seeded. Default 100.0
	maxJump float64
	last    Point
	seeded  bool
	filter  *kalman_filter.Kalman2D
}

// NewSmootherDefault creates smoother for 30 fps input
func NewSmootherDefault() *Smoother {
	return NewSmoother(1.0/30.0, 100.0)
}

// NewSmoother creates new instance of Smoother
func NewSmoother(dt, maxJump float64) *Smoother {
	return &Smoother{
		dt:      dt,
		maxJump: maxJump,
	}
}

func (smoother *Smoother) seed(point Point) {
	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	smoother.filter = kalman_filter.NewKalman2D(smoother.dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(float64(point.X), float64(point.Y)))
	smoother.last = point
	smoother.seeded = true
}

// Smooth feeds raw point to the filter and returns filtered position.
// First point after creation or Reset() is returned as is.
func (smoother *Smoother) Smooth(point Point) (Point, error) {
	if !smoother.seeded || euclideanDistance(smoother.last, point) > smoother.maxJump {
		smoother.seed(point)
		return point, nil
	}
	smoother.last = point
	smoother.filter.Predict()
	err := smoother.filter.Update(float64(point.X), float64(point.Y))
	if err != nil {
		return Sentinel, errors.Wrap(err, "Can't update path smoother")
	}
	stateX, stateY := smoother.filter.GetState()
	return Point{
		X: int(math.Round(stateX)),
		Y: int(math.Round(stateY)),
	}, nil
}

// Reset forgets filter state. Call it whenever the track is cleared
func (smoother *Smoother) Reset() {
	smoother.seeded = false
	smoother.filter = nil
}
