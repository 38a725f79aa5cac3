package vision

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Stage is an intermediate image of the contour pipeline
type Stage struct {
	Title string
	File  string
}

var (
	StageImage    = Stage{Title: "Image", File: "0_image.png"}
	StageGray     = Stage{Title: "Gray", File: "1_gray.png"}
	StageBlurred  = Stage{Title: "Blurred", File: "2_blurred.png"}
	StageMask     = Stage{Title: "Mask", File: "3_mask.png"}
	StageContours = Stage{Title: "Contours", File: "4_contours.png"}
)

// ContourStages is the static contour demo: gray -> blur -> binary threshold -> contours.
// Every stage is shown under its title and written under its file name.
type ContourStages struct {
	// Binary threshold applied to blurred gray image. Default 60
	Threshold float32
	// Gaussian kernel size. Default 5
	Kernel int
}

// NewContourStagesDefault creates pipeline with the classroom parameters
func NewContourStagesDefault() *ContourStages {
	return &ContourStages{
		Threshold: 60,
		Kernel:    5,
	}
}

func emit(stage Stage, img gocv.Mat, display, files Sink) error {
	if display != nil {
		if err := display.Show(stage.Title, img); err != nil {
			return errors.Wrapf(err, "Can't show stage %s", stage.Title)
		}
	}
	if files != nil {
		if err := files.Show(stage.File, img); err != nil {
			return errors.Wrapf(err, "Can't write stage %s", stage.File)
		}
	}
	return nil
}

// Run pushes every stage to display and files (either may be nil) and
// returns number of found contours. Contours are drawn over img.
func (cs *ContourStages) Run(img *gocv.Mat, display, files Sink) (int, error) {
	if err := emit(StageImage, *img, display, files); err != nil {
		return 0, err
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*img, &gray, gocv.ColorBGRToGray)
	if err := emit(StageGray, gray, display, files); err != nil {
		return 0, err
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(cs.Kernel, cs.Kernel), 0, 0, gocv.BorderDefault)
	if err := emit(StageBlurred, blurred, display, files); err != nil {
		return 0, err
	}

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(blurred, &mask, cs.Threshold, 255, gocv.ThresholdBinary)
	if err := emit(StageMask, mask, display, files); err != nil {
		return 0, err
	}

	contours := gocv.FindContours(mask, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()
	for i := 0; i < contours.Size(); i++ {
		gocv.DrawContours(img, contours, i, Red, 2)
	}
	if err := emit(StageContours, *img, display, files); err != nil {
		return 0, err
	}
	return contours.Size(), nil
}
