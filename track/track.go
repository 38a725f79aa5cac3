package track

import "image"

// LossPolicy says what a Track does with a frame where the target was not found
type LossPolicy uint16

const (
	// ClearOnLoss drops the whole path once target is lost
	ClearOnLoss LossPolicy = iota
	// KeepOnLoss ignores the lost frame and keeps the path
	KeepOnLoss
)

func (p LossPolicy) String() string {
	switch p {
	case ClearOnLoss:
		return "clear-on-loss"
	case KeepOnLoss:
		return "keep-on-loss"
	default:
		return "unknown"
	}
}

// Track is ordered history of accepted centroids of a single target.
// It is owned by one capture session and is not safe for concurrent use.
type Track struct {
	points []Point
	// Points outside of region are treated as lost. Empty region accepts any point
	region image.Rectangle
	policy LossPolicy
}

// NewTrackDefault creates track which clears itself when target is lost
func NewTrackDefault() *Track {
	return NewTrack(ClearOnLoss, image.Rectangle{})
}

// NewTrack creates new instance of Track
func NewTrack(policy LossPolicy, region image.Rectangle) *Track {
	return &Track{
		points: make([]Point, 0, 150),
		region: region,
		policy: policy,
	}
}

// Consider decides whether point should extend the track.
// Returns true if point was appended.
func (track *Track) Consider(point Point) bool {
	if point.IsSentinel() || !point.In(track.region) {
		if track.policy == ClearOnLoss {
			track.Clear()
		}
		return false
	}
	if len(track.points) > 0 && track.points[len(track.points)-1] == point {
		return false
	}
	track.points = append(track.points, point)
	return true
}

// Clear resets track to empty
func (track *Track) Clear() {
	track.points = track.points[:0]
}

// Points returns copy of accepted points in insertion order
func (track *Track) Points() []Point {
	out := make([]Point, len(track.points))
	copy(out, track.points)
	return out
}

// Len returns number of accepted points
func (track *Track) Len() int {
	return len(track.points)
}

// Last returns last accepted point. Second value is false for empty track
func (track *Track) Last() (Point, bool) {
	if len(track.points) == 0 {
		return Sentinel, false
	}
	return track.points[len(track.points)-1], true
}

// Policy returns loss policy of track
func (track *Track) Policy() LossPolicy {
	return track.policy
}

// SetRegion changes valid region. Frame size usually is known only after first read
func (track *Track) SetRegion(region image.Rectangle) {
	track.region = region
}
