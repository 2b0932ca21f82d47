package camttc

import (
	"image"

	"gocv.io/x/gocv"
)

// KeypointsFromOCV takes the keypoints detected by a gocv feature detector
// and converts them into the camttc keypoint format, preserving slice order
// so match indices stay valid
func KeypointsFromOCV(kpts []gocv.KeyPoint) []Keypoint {

	var out []Keypoint

	for _, kp := range kpts {
		out = append(out, Keypoint{
			X: float32(kp.X),
			Y: float32(kp.Y),
		})
	}

	return out
}

// CorrespondencesFromOCV takes the matches produced by a gocv descriptor
// matcher and converts them into correspondences.  The matcher's query set
// is the previous frame and its train set the current frame
func CorrespondencesFromOCV(matches []gocv.DMatch) []Correspondence {

	var out []Correspondence

	for _, m := range matches {
		out = append(out, Correspondence{
			PrevIdx:       m.QueryIdx,
			CurrIdx:       m.TrainIdx,
			Dissimilarity: float32(m.Distance),
		})
	}

	return out
}

// RegionFromRect creates a Region from a standard image rectangle as used
// by gocv detection results
func RegionFromRect(id int, rect image.Rectangle, label int, prob float32) *Region {
	return NewRegion(
		id,
		NewRect(
			float32(rect.Min.X),
			float32(rect.Min.Y),
			float32(rect.Dx()),
			float32(rect.Dy()),
		),
		label,
		prob,
	)
}

// RegionsFromRects creates regions for detectors that report plain
// rectangles without identifiers, such as gocv cascade classifiers.  Region
// IDs are drawn from the given generator so they stay unique within the
// frame, all regions share the given class label and confidence
func RegionsFromRects(rects []image.Rectangle, label int, prob float32,
	gen *RegionIDGenerator) []*Region {

	var regions []*Region

	for _, rect := range rects {
		regions = append(regions,
			RegionFromRect(gen.GetNext(), rect, label, prob))
	}

	return regions
}
