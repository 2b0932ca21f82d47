package camttc

// RegionVotes builds the correspondence vote matrix between the current and
// previous frame's regions.  The matrix is indexed by the scan position of
// the regions within their frames, votes[ci][pi] is the number of
// correspondences whose current keypoint falls inside current region ci and
// whose previous keypoint falls inside previous region pi.  Correspondences
// where either keypoint lies in no region cast no vote
func RegionVotes(matches []Correspondence, prevFrame, currFrame *Frame) [][]int {

	votes := make([][]int, len(currFrame.Regions))

	for i := range votes {
		votes[i] = make([]int, len(prevFrame.Regions))
	}

	for _, m := range matches {

		ci := containingRegion(currFrame, m.CurrIdx)
		pi := containingRegion(prevFrame, m.PrevIdx)

		if ci >= 0 && pi >= 0 {
			votes[ci][pi]++
		}
	}

	return votes
}

// containingRegion returns the scan index of the region containing the
// frame's keypoint kptIdx, or -1 when no region contains it.  When several
// regions contain the keypoint the last one scanned wins
func containingRegion(frame *Frame, kptIdx int) int {

	if kptIdx < 0 || kptIdx >= len(frame.Keypoints) {
		return -1
	}

	kpt := frame.Keypoints[kptIdx]
	found := -1

	for i, region := range frame.Regions {
		if region.Rect.Contains(kpt.X, kpt.Y) {
			found = i
		}
	}

	return found
}

// MatchRegions associates the regions of the current frame with the regions
// of the previous frame by majority correspondence vote.  For every current
// region the previous region with the highest vote count is selected, ties
// keep the earliest scanned previous region.
//
// One entry is emitted per current region even when its best vote count is
// zero, in which case the mapping falls back to the first scanned previous
// region and carries no evidence.  Downstream consumers must treat zero-vote
// mappings as non-authoritative, RegionVotes exposes the counts.
//
// The mapping is not guaranteed injective, two current regions may claim the
// same previous region.  Use MatchRegionsUnique when a one-to-one mapping
// is required
func MatchRegions(matches []Correspondence, prevFrame, currFrame *Frame) AssociationMap {

	assoc := make(AssociationMap)

	if len(prevFrame.Regions) == 0 || len(currFrame.Regions) == 0 {
		return assoc
	}

	votes := RegionVotes(matches, prevFrame, currFrame)

	for ci, curr := range currFrame.Regions {

		best := -1
		bestIdx := 0

		for pi := range prevFrame.Regions {
			if votes[ci][pi] > best {
				best = votes[ci][pi]
				bestIdx = pi
			}
		}

		assoc[curr.ID] = prevFrame.Regions[bestIdx].ID
	}

	return assoc
}

// MatchRegionsUnique associates regions between frames by solving the
// assignment problem over the correspondence vote matrix, maximizing the
// total vote count of the selected pairs.  Unlike MatchRegions the result
// is injective: every previous region is claimed by at most one current
// region, and pairs without a single supporting vote are omitted, so
// current regions with no evidence produce no entry
func MatchRegionsUnique(matches []Correspondence, prevFrame, currFrame *Frame) AssociationMap {

	assoc := make(AssociationMap)

	if len(prevFrame.Regions) == 0 || len(currFrame.Regions) == 0 {
		return assoc
	}

	votes := RegionVotes(matches, prevFrame, currFrame)

	// the solver minimizes cost over a square matrix, convert votes to
	// costs and pad the rectangular matrix with worst-case cells
	n := len(currFrame.Regions)

	if len(prevFrame.Regions) > n {
		n = len(prevFrame.Regions)
	}

	maxVote := 0

	for _, row := range votes {
		for _, v := range row {
			if v > maxVote {
				maxVote = v
			}
		}
	}

	cost := make([][]float64, n)

	for i := range cost {
		cost[i] = make([]float64, n)

		for j := range cost[i] {
			if i < len(votes) && j < len(votes[i]) {
				cost[i][j] = float64(maxVote - votes[i][j])
			} else {
				cost[i][j] = float64(maxVote + 1)
			}
		}
	}

	rowSol, err := solveAssignment(cost)

	if err != nil {
		// solver failure yields no associations rather than a fault,
		// callers see an empty map exactly as for barren vote matrices
		return assoc
	}

	for ci, curr := range currFrame.Regions {

		pi := rowSol[ci]

		if pi < 0 || pi >= len(prevFrame.Regions) {
			continue
		}

		if votes[ci][pi] > 0 {
			assoc[curr.ID] = prevFrame.Regions[pi].ID
		}
	}

	return assoc
}
