package vision

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestFileSink(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	img := createBallFrame(t, 64, 32, green, image.Rect(0, 0, 10, 10))
	defer img.Close()

	if err := sink.Show("frame.png", img); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	saved, err := imaging.Open(filepath.Join(sink.Dir, "frame.png"))
	if err != nil {
		t.Fatalf("saved frame can't be opened: %s", err.Error())
	}
	if b := saved.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("incorrect saved size %dx%d, expected: %dx%d", b.Dx(), b.Dy(), 64, 32)
	}
	r, g, _, _ := saved.At(5, 5).RGBA()
	if g>>8 != 255 || r != 0 {
		t.Errorf("saved pixel should be green")
	}
}

func TestFileSinkUnknownFormat(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	img := createBlackFrame(t, 8, 8)
	defer img.Close()
	if err := sink.Show("frame.unknown", img); err == nil {
		t.Errorf("error expected for unsupported extension")
	}
}
