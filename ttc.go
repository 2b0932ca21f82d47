package camttc

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// distEps is the pixel distance below which a previous-frame keypoint pair
// is treated as coincident and skipped to avoid ratio blow-up
const distEps = 1e-9

// RangeTTC estimates time-to-collision from the clustered range points of a
// region in two consecutive frames, assuming constant relative velocity.
//
// Both point sets are reduced to a representative closest in-lane distance:
// the empirical LaneQuantile quantile of the forward (x) distances of points
// within the ego lane band |y| <= LaneWidth/2.  A low quantile resists
// single spurious near returns that a raw minimum would latch onto.
//
// Returns NaN when either point set is empty, when either set has no
// in-lane points, or when the distance did not change between frames.  A
// negative result means the distance is increasing and is returned as is
func RangeTTC(prevPoints, currPoints []RangePoint, frameRate float64,
	p Params) float64 {

	if len(prevPoints) == 0 || len(currPoints) == 0 {
		return math.NaN()
	}

	distPrev := laneDistance(prevPoints, p)
	distCurr := laneDistance(currPoints, p)

	if math.IsNaN(distPrev) || math.IsNaN(distCurr) {
		return math.NaN()
	}

	denom := distPrev - distCurr

	if denom == 0 {
		return math.NaN()
	}

	return distCurr * (1 / frameRate) / denom
}

// laneDistance reduces a point set to the representative closest obstacle
// distance within the ego lane, NaN when no point lies in the lane band
func laneDistance(points []RangePoint, p Params) float64 {

	halfLane := p.LaneWidth / 2
	var xs []float64

	for _, pt := range points {
		if math.Abs(pt.Pos.Y) <= halfLane {
			xs = append(xs, pt.Pos.X)
		}
	}

	if len(xs) == 0 {
		return math.NaN()
	}

	sort.Float64s(xs)

	return stat.Quantile(p.LaneQuantile, stat.Empirical, xs, nil)
}

// CameraTTC estimates time-to-collision from the relative scale change of a
// region's keypoint constellation between two consecutive frames.
//
// For every unordered pair of correspondences the ratio of current to
// previous pixel distance between the two keypoints is recorded.  Pairs
// whose previous distance is indistinguishable from zero or whose current
// distance is below MinPairDist are skipped as noise dominated.  The scale
// change is the median surviving ratio, taken as the empirical 0.5 quantile
// of the sorted ratios: the exact middle element for odd counts and the
// lower of the two middle elements for even counts.
//
// Returns NaN when no ratio survives or when the median ratio is exactly 1
// (no scale change, infinite TTC)
func CameraTTC(prevKpts, currKpts []Keypoint, matches []Correspondence,
	frameRate float64, p Params) float64 {

	var distRatios []float64

	for i := 0; i < len(matches); i++ {

		outer := matches[i]

		if !kptIndexOK(outer, prevKpts, currKpts) {
			continue
		}

		kpOuterCurr := currKpts[outer.CurrIdx]
		kpOuterPrev := prevKpts[outer.PrevIdx]

		for j := i + 1; j < len(matches); j++ {

			inner := matches[j]

			if !kptIndexOK(inner, prevKpts, currKpts) {
				continue
			}

			kpInnerCurr := currKpts[inner.CurrIdx]
			kpInnerPrev := prevKpts[inner.PrevIdx]

			distCurr := pixelDist(kpOuterCurr, kpInnerCurr)
			distPrev := pixelDist(kpOuterPrev, kpInnerPrev)

			if distPrev <= distEps || distCurr < p.MinPairDist {
				continue
			}

			distRatios = append(distRatios, distCurr/distPrev)
		}
	}

	if len(distRatios) == 0 {
		return math.NaN()
	}

	sort.Float64s(distRatios)

	medianRatio := stat.Quantile(0.5, stat.Empirical, distRatios, nil)

	if medianRatio == 1 {
		return math.NaN()
	}

	return -(1 / frameRate) / (1 - medianRatio)
}

// kptIndexOK reports whether both keypoint indices of a correspondence are
// within the bounds of their frame's keypoint slices
func kptIndexOK(m Correspondence, prevKpts, currKpts []Keypoint) bool {
	return m.PrevIdx >= 0 && m.PrevIdx < len(prevKpts) &&
		m.CurrIdx >= 0 && m.CurrIdx < len(currKpts)
}

// pixelDist returns the Euclidean pixel distance between two keypoints
func pixelDist(a, b Keypoint) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
