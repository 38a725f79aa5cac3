package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// CleanIterations is the number of erosions (and then dilations) applied to a clean mask
const CleanIterations = 4

// CreateMask converts BGR image to HSV and keeps pixels inside interval.
// With clean set, isolated pixels are removed by erosion and survivors restored by dilation.
// Caller owns the returned Mat.
func CreateMask(img gocv.Mat, interval ColorInterval, clean bool) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	gocv.InRangeWithScalar(hsv, interval.Lower.Scalar(), interval.Upper.Scalar(), &mask)
	if !clean {
		return mask
	}

	// Same as OpenCV default (empty) kernel
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()
	for i := 0; i < CleanIterations; i++ {
		gocv.Erode(mask, &mask, kernel)
	}
	for i := 0; i < CleanIterations; i++ {
		gocv.Dilate(mask, &mask, kernel)
	}
	return mask
}
