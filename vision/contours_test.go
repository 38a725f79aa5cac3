package vision

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContourStages(t *testing.T) {
	img := createBallFrame(t, 120, 80, white, image.Rect(20, 20, 50, 50), image.Rect(70, 30, 100, 60))
	defer img.Close()

	display := &recordingSink{}
	files, err := NewFileSink(filepath.Join(t.TempDir(), "stages"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	n, err := NewContourStagesDefault().Run(&img, display, files)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if n != 2 {
		t.Errorf("incorrect number of contours: %d, expected: %d", n, 2)
	}

	expectedTitles := []string{"Image", "Gray", "Blurred", "Mask", "Contours"}
	if diff := cmp.Diff(expectedTitles, display.names); diff != "" {
		t.Errorf("unexpected stage titles (-want +got):\n%s", diff)
	}
	for _, stage := range []Stage{StageImage, StageGray, StageBlurred, StageMask, StageContours} {
		if _, err := os.Stat(filepath.Join(files.Dir, stage.File)); err != nil {
			t.Errorf("stage file %s should be written: %s", stage.File, err.Error())
		}
	}
}

func TestContourStagesWithoutSinks(t *testing.T) {
	img := createBlackFrame(t, 40, 40)
	defer img.Close()

	n, err := NewContourStagesDefault().Run(&img, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if n != 0 {
		t.Errorf("black image should have no contours, got %d", n)
	}
}
