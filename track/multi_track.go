package track

import "github.com/google/uuid"

// ClassID identifies colour class that produced a point
type ClassID = uuid.UUID

// NewClassID generates identifier for a new colour class
func NewClassID() ClassID {
	return uuid.New()
}

// Entry is an accepted point together with the class it was detected for
type Entry struct {
	Class ClassID
	Point Point
}

// MultiTrack accumulates points of several colour classes in one sequence.
// Unlike Track it never clears itself: only an explicit Clear() empties it.
type MultiTrack struct {
	entries []Entry
	// Centroids of every class seen on the previous frame, used to drop still balls
	previous map[ClassID]map[Point]struct{}
}

// NewMultiTrack creates new instance of MultiTrack
func NewMultiTrack() *MultiTrack {
	return &MultiTrack{
		entries:  make([]Entry, 0, 150),
		previous: make(map[ClassID]map[Point]struct{}),
	}
}

// ConsiderFrame takes every centroid of one class found on a frame.
// Sentinels and centroids already seen for this class on the previous frame are skipped.
// Returns number of appended points.
func (mt *MultiTrack) ConsiderFrame(class ClassID, points []Point) int {
	prev := mt.previous[class]
	current := make(map[Point]struct{}, len(points))
	appended := 0
	for _, point := range points {
		if point.IsSentinel() {
			continue
		}
		if _, seen := current[point]; seen {
			continue
		}
		current[point] = struct{}{}
		if _, still := prev[point]; still {
			continue
		}
		mt.entries = append(mt.entries, Entry{Class: class, Point: point})
		appended++
	}
	mt.previous[class] = current
	return appended
}

// Consider is ConsiderFrame for a frame with a single centroid. A sentinel is ignored
// and does not forget the previous frame. Returns true if point was appended.
func (mt *MultiTrack) Consider(class ClassID, point Point) bool {
	if point.IsSentinel() {
		return false
	}
	return mt.ConsiderFrame(class, []Point{point}) == 1
}

// Clear resets accumulator to empty
func (mt *MultiTrack) Clear() {
	mt.entries = mt.entries[:0]
	mt.previous = make(map[ClassID]map[Point]struct{})
}

// Entries returns copy of accepted entries in insertion order
func (mt *MultiTrack) Entries() []Entry {
	out := make([]Entry, len(mt.entries))
	copy(out, mt.entries)
	return out
}

// Len returns number of accepted entries
func (mt *MultiTrack) Len() int {
	return len(mt.entries)
}

// PointsOf returns accepted points of a single class in insertion order
func (mt *MultiTrack) PointsOf(class ClassID) []Point {
	out := make([]Point, 0)
	for _, entry := range mt.entries {
		if entry.Class == class {
			out = append(out, entry.Point)
		}
	}
	return out
}
