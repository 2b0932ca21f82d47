package camttc

import (
	"errors"
	"fmt"
)

// Result holds the TTC estimates for one associated region pair.  Either
// estimate may be NaN when its inputs were degenerate, NaN results are
// surfaced rather than dropped so the downstream decision layer sees every
// associated pair
type Result struct {
	// CurrID is the current-frame region ID
	CurrID int
	// PrevID is the associated previous-frame region ID
	PrevID int
	// Votes is the number of correspondences supporting the association.
	// Pairs with zero votes are non-authoritative fallback mappings
	Votes int
	// IoU is the overlap of the two region rectangles across the frame
	// pair.  Consecutive frames move little, so a near zero overlap on a
	// low vote pair flags a doubtful association
	IoU float32
	// TTCRange is the range sensor based time-to-collision estimate
	TTCRange float64
	// TTCCamera is the keypoint scale change based time-to-collision
	// estimate
	TTCCamera float64
}

// Processor runs the full TTC pipeline over frame pairs: range point
// clustering, region association, per-region correspondence filtering and
// both TTC estimators.  The calibration is immutable and shared, each frame
// pair's collections are owned by the call, so independent frame pairs may
// be processed concurrently on separate Processors or the same one
type Processor struct {
	calib     *Calibration
	params    Params
	frameRate float64
}

// NewProcessor returns a Processor for the given calibration, sensor frame
// rate in frames per second, and tuning parameters
func NewProcessor(calib *Calibration, frameRate float64, params Params) (*Processor, error) {

	if calib == nil {
		return nil, errors.New("calibration is nil")
	}

	if frameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %v", frameRate)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Processor{
		calib:     calib,
		params:    params,
		frameRate: frameRate,
	}, nil
}

// ProcessFramePair computes TTC estimates for every associated region pair
// of the previous and current frame.  matches are the keypoint
// correspondences between the two frames.
//
// Range points are clustered into a frame's regions only when no region of
// that frame owns points yet, so in a streaming loop the previous frame
// keeps the clusters computed when it was current.  One Result is emitted
// per current-frame region in scan order, degenerate estimates are NaN and
// a failed estimate for one pair does not abort the others
func (p *Processor) ProcessFramePair(prev, curr *Frame,
	matches []Correspondence) []Result {

	if !clustered(prev) {
		ClusterRangePoints(prev.Regions, prev.Points, p.params.ShrinkFactor, p.calib)
	}

	if !clustered(curr) {
		ClusterRangePoints(curr.Regions, curr.Points, p.params.ShrinkFactor, p.calib)
	}

	votes := RegionVotes(matches, prev, curr)
	assoc := MatchRegions(matches, prev, curr)

	prevByID := make(map[int]*Region, len(prev.Regions))

	for _, region := range prev.Regions {
		prevByID[region.ID] = region
	}

	results := make([]Result, 0, len(curr.Regions))

	for ci, currRegion := range curr.Regions {

		prevID, ok := assoc[currRegion.ID]

		if !ok {
			continue
		}

		prevRegion := prevByID[prevID]

		if len(currRegion.Matches) == 0 {
			FilterCorrespondences(currRegion, curr.Keypoints, matches,
				p.params.MatchDistFactor)
		}

		pairVotes := 0

		for pi, region := range prev.Regions {
			if region.ID == prevID {
				pairVotes = votes[ci][pi]
				break
			}
		}

		results = append(results, Result{
			CurrID: currRegion.ID,
			PrevID: prevID,
			Votes:  pairVotes,
			IoU:    currRegion.Rect.CalcIoU(prevRegion.Rect),
			TTCRange: RangeTTC(prevRegion.Points, currRegion.Points,
				p.frameRate, p.params),
			TTCCamera: CameraTTC(prev.Keypoints, curr.Keypoints,
				currRegion.Matches, p.frameRate, p.params),
		})
	}

	return results
}

// clustered reports whether any region of the frame already owns range
// points
func clustered(frame *Frame) bool {

	for _, region := range frame.Regions {
		if len(region.Points) > 0 {
			return true
		}
	}

	return false
}
