package camttc

import (
	"gonum.org/v1/gonum/stat"
)

// FilterCorrespondences selects the correspondences belonging to a region
// and appends them to the region's Matches collection.
//
// A correspondence is a candidate when its current-frame keypoint lies
// inside the region's rectangle.  Candidates are then thresholded against
// distFactor times the mean candidate dissimilarity and only those strictly
// below the threshold are retained, cutting matcher outliers that landed in
// the region by chance.  When no candidate falls inside the rectangle zero
// correspondences are retained
func FilterCorrespondences(region *Region, currKpts []Keypoint,
	matches []Correspondence, distFactor float64) {

	var candidates []Correspondence
	var distances []float64

	for _, m := range matches {

		if m.CurrIdx < 0 || m.CurrIdx >= len(currKpts) {
			continue
		}

		kpt := currKpts[m.CurrIdx]

		if region.Rect.Contains(kpt.X, kpt.Y) {
			candidates = append(candidates, m)
			distances = append(distances, float64(m.Dissimilarity))
		}
	}

	if len(candidates) == 0 {
		return
	}

	threshold := distFactor * stat.Mean(distances, nil)

	for i, m := range candidates {
		if distances[i] < threshold {
			region.Matches = append(region.Matches, m)
		}
	}
}
