package track

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultiTrackConsider(t *testing.T) {
	blue := NewClassID()
	pink := NewClassID()

	mt := NewMultiTrack()
	mt.Consider(blue, NewPoint(10, 10))
	mt.Consider(pink, NewPoint(10, 10))
	mt.Consider(blue, NewPoint(10, 10))
	mt.Consider(pink, Sentinel)
	mt.Consider(pink, NewPoint(12, 10))
	mt.Consider(blue, NewPoint(10, 10))

	correctNumOfEntries := 3
	if mt.Len() != correctNumOfEntries {
		t.Errorf("incorrect number of entries: %d, expected: %d", mt.Len(), correctNumOfEntries)
	}
	expected := []Entry{
		{Class: blue, Point: NewPoint(10, 10)},
		{Class: pink, Point: NewPoint(10, 10)},
		{Class: pink, Point: NewPoint(12, 10)},
	}
	if diff := cmp.Diff(expected, mt.Entries()); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Point{{10, 10}, {12, 10}}, mt.PointsOf(pink)); diff != "" {
		t.Errorf("unexpected pink points (-want +got):\n%s", diff)
	}
}

func TestMultiTrackNeverClearsItself(t *testing.T) {
	green := NewClassID()
	mt := NewMultiTrack()
	for i := 0; i < 5; i++ {
		mt.Consider(green, NewPoint(i, i))
		mt.Consider(green, Sentinel)
	}
	if mt.Len() != 5 {
		t.Errorf("incorrect number of entries: %d, expected: %d", mt.Len(), 5)
	}
}

func TestMultiTrackClear(t *testing.T) {
	green := NewClassID()
	mt := NewMultiTrack()
	mt.Consider(green, NewPoint(1, 1))
	mt.Clear()
	if mt.Len() != 0 || len(mt.Entries()) != 0 {
		t.Errorf("accumulator should be empty after Clear")
	}
	// Same point is accepted again once history is gone
	if !mt.Consider(green, NewPoint(1, 1)) {
		t.Errorf("point should be accepted after Clear")
	}
}

func TestMultiTrackStillBallsOfOneColour(t *testing.T) {
	blue := NewClassID()
	mt := NewMultiTrack()
	frame := []Point{{10, 10}, {80, 80}}
	for i := 0; i < 10; i++ {
		mt.ConsiderFrame(blue, frame)
	}
	correctNumOfEntries := 2
	if mt.Len() != correctNumOfEntries {
		t.Errorf("incorrect number of entries after 10 frames of two still balls: %d, expected: %d", mt.Len(), correctNumOfEntries)
	}
}

func TestMultiTrackConsiderFrame(t *testing.T) {
	blue := NewClassID()
	pink := NewClassID()
	frames := []struct {
		class    ClassID
		points   []Point
		appended int
	}{
		{blue, []Point{{10, 10}, {80, 80}}, 2},
		{pink, []Point{{10, 10}}, 1},
		// One ball moved
		{blue, []Point{{10, 10}, {82, 80}}, 1},
		// Sentinel and a repeat inside one frame
		{blue, []Point{Sentinel, {82, 80}, {30, 30}, {30, 30}}, 1},
		// Nothing found: the next frame starts from scratch
		{blue, nil, 0},
		{blue, []Point{{30, 30}}, 1},
	}
	mt := NewMultiTrack()
	for i, frame := range frames {
		if got := mt.ConsiderFrame(frame.class, frame.points); got != frame.appended {
			t.Errorf("frame %d: incorrect number of appended points: %d, expected: %d", i, got, frame.appended)
		}
	}
}
