package vision

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestOpenSourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mp4")
	capture, err := OpenSource(path, DefaultCamera)
	if err == nil {
		capture.Close()
		t.Fatalf("error expected for missing video file")
	}
	if errors.Cause(err) != ErrCaptureOpen {
		t.Errorf("error should wrap ErrCaptureOpen, got: %s", err.Error())
	}
}
