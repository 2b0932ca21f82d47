package camttc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// closingFramePair builds a frame pair with one detected region per frame
// where the object closes from 10 to 8 distance units while its keypoint
// constellation scales by 0.9
func closingFramePair() (prev, curr *Frame, matches []Correspondence) {

	rect := NewRect(250, 150, 140, 180)

	prev = &Frame{
		Index: 0,
		Keypoints: []Keypoint{
			{X: 300, Y: 160},
			{X: 300, Y: 310},
			{X: 350, Y: 160},
		},
		Regions: []*Region{NewRegion(3, rect, 2, 0.9)},
		Points: []RangePoint{
			NewRangePoint(10, -0.5, 0, 0.5),
			NewRangePoint(10, 0, 0, 0.5),
			NewRangePoint(10, 0.5, 0, 0.5),
		},
	}

	curr = &Frame{
		Index: 1,
		Keypoints: []Keypoint{
			{X: 300, Y: 160},
			{X: 300, Y: 295},
			{X: 350, Y: 160},
		},
		Regions: []*Region{NewRegion(7, rect, 2, 0.9)},
		Points: []RangePoint{
			NewRangePoint(8, -0.5, 0, 0.5),
			NewRangePoint(8, 0, 0, 0.5),
			NewRangePoint(8, 0.5, 0, 0.5),
		},
	}

	// the third match is a dissimilarity outlier cut by the filter
	matches = []Correspondence{
		{PrevIdx: 0, CurrIdx: 0, Dissimilarity: 1},
		{PrevIdx: 1, CurrIdx: 1, Dissimilarity: 1},
		{PrevIdx: 2, CurrIdx: 2, Dissimilarity: 10},
	}

	return prev, curr, matches
}

func TestProcessFramePair(t *testing.T) {

	proc, err := NewProcessor(newTestCalibration(t), 10, DefaultParams())

	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}

	prev, curr, matches := closingFramePair()

	results := proc.ProcessFramePair(prev, curr, matches)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	res := results[0]

	if res.CurrID != 7 || res.PrevID != 3 {
		t.Errorf("association = %d <- %d, want 7 <- 3", res.CurrID, res.PrevID)
	}

	if res.Votes != 3 {
		t.Errorf("votes = %d, want 3", res.Votes)
	}

	// the object barely moved in the image, both frames share the same
	// rectangle so the cross-frame overlap is total
	if !almostEqual(res.IoU, 1.0, 1e-5) {
		t.Errorf("IoU = %v, want 1.0", res.IoU)
	}

	// distances close from 10 to 8 at 10 fps: TTC = 8 * 0.1 / 2 = 0.4
	if !almostEqual64(res.TTCRange, 0.4, 1e-9) {
		t.Errorf("TTCRange = %v, want 0.4", res.TTCRange)
	}

	// keypoint constellation scales by 0.9: TTC = -0.1 / (1 - 0.9) = -1.0
	if !almostEqual64(res.TTCCamera, -1.0, 1e-9) {
		t.Errorf("TTCCamera = %v, want -1.0", res.TTCCamera)
	}

	// the outlier correspondence was filtered out of the region
	if len(curr.Regions[0].Matches) != 2 {
		t.Errorf("region owns %d correspondences, want 2",
			len(curr.Regions[0].Matches))
	}
}

func TestProcessFramePairRepeatable(t *testing.T) {

	proc, err := NewProcessor(newTestCalibration(t), 10, DefaultParams())

	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}

	prev, curr, matches := closingFramePair()

	first := proc.ProcessFramePair(prev, curr, matches)
	second := proc.ProcessFramePair(prev, curr, matches)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated processing differs (-first +second):\n%s", diff)
	}

	// reprocessing must not double up the owned collections
	if len(curr.Regions[0].Points) != 3 {
		t.Errorf("region owns %d points after reprocessing, want 3",
			len(curr.Regions[0].Points))
	}

	if len(curr.Regions[0].Matches) != 2 {
		t.Errorf("region owns %d correspondences after reprocessing, want 2",
			len(curr.Regions[0].Matches))
	}
}

func TestNewProcessorValidation(t *testing.T) {

	calib := newTestCalibration(t)

	if _, err := NewProcessor(nil, 10, DefaultParams()); err == nil {
		t.Error("expected error for nil calibration")
	}

	if _, err := NewProcessor(calib, 0, DefaultParams()); err == nil {
		t.Error("expected error for zero frame rate")
	}

	bad := DefaultParams()
	bad.ShrinkFactor = 1.5

	if _, err := NewProcessor(calib, 10, bad); err == nil {
		t.Error("expected error for invalid params")
	}
}
