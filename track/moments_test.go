package track

import "testing"

func TestCentroidEmpty(t *testing.T) {
	if c := Centroid(Moments{}); c != Sentinel {
		t.Errorf("Wrong answer: %v, correct answer: %v", c, Sentinel)
	}
	if c := Centroid(Moments{M00: MomentEpsilon / 2, M10: 1, M01: 1}); c != Sentinel {
		t.Errorf("near zero area should give sentinel, got %v", c)
	}
}

func TestCentroidSquare(t *testing.T) {
	// 10x10 filled square with pixels 20..29 on both axes:
	// m00 = 100, m10 = m01 = 10 * (20+21+...+29) = 2450
	m := NewMomentsFrom(map[string]float64{
		"m00": 100,
		"m10": 2450,
		"m01": 2450,
	})
	c := Centroid(m)
	if c != NewPoint(24, 24) {
		t.Errorf("Wrong answer: %v, correct answer: %v", c, NewPoint(24, 24))
	}
}

func TestCentroidAsymmetric(t *testing.T) {
	m := Moments{M00: 4, M10: 4 * 100, M01: 4 * 7}
	c := Centroid(m)
	if c != NewPoint(100, 7) {
		t.Errorf("Wrong answer: %v, correct answer: %v", c, NewPoint(100, 7))
	}
}
