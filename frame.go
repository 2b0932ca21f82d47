package camttc

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// RangePoint is a single 3D return from the ranging sensor in sensor-local
// coordinates: x facing forward, y facing left and z facing up from the
// sensor.  Points are immutable once captured
type RangePoint struct {
	// Pos is the 3D position of the return in the sensor frame
	Pos r3.Vec
	// Reflectivity is the return intensity reported by the sensor
	Reflectivity float64
}

// NewRangePoint is a constructor function for the RangePoint struct
func NewRangePoint(x, y, z, reflectivity float64) RangePoint {
	return RangePoint{
		Pos:          r3.Vec{X: x, Y: y, Z: z},
		Reflectivity: reflectivity,
	}
}

// Keypoint is a 2D image location of a visual feature.  Its index within the
// frame's keypoint slice is the frame-local identifier correspondences
// refer to
type Keypoint struct {
	X, Y float32
}

// Correspondence is a matched keypoint pair between two consecutive frames,
// referring to keypoints by their frame-local indices.  Produced by an
// external matcher and consumed read-only
type Correspondence struct {
	// PrevIdx is the index of the matched keypoint in the previous frame
	PrevIdx int
	// CurrIdx is the index of the matched keypoint in the current frame
	CurrIdx int
	// Dissimilarity is the matcher's descriptor distance, lower is a
	// better match
	Dissimilarity float32
}

// Region is the per-frame proxy for one detected object: a rectangle in
// image pixel space with an identifier unique within its frame.  The Points
// and Matches collections are populated by ClusterRangePoints and
// FilterCorrespondences respectively and are append-only
type Region struct {
	// ID is the region identifier, unique within its frame
	ID int
	// Rect is the bounding rectangle of the detected object
	Rect Rect
	// Label is the class label of the object detected
	Label int
	// Prob is the confidence/probability of the object detected
	Prob float32
	// Points are the range sensor returns owned by this region
	Points []RangePoint
	// Matches are the keypoint correspondences owned by this region
	Matches []Correspondence
}

// NewRegion is a constructor function for the Region struct
func NewRegion(id int, rect Rect, label int, prob float32) *Region {
	return &Region{
		ID:    id,
		Rect:  rect,
		Label: label,
		Prob:  prob,
	}
}

// Frame aggregates the per-frame inputs of one TTC computation.  Two frames
// (previous and current) form the unit of processing for one frame pair
type Frame struct {
	// Index is the sequence number of the frame
	Index int
	// Keypoints are the visual features detected in the frame
	Keypoints []Keypoint
	// Regions are the object detections of the frame
	Regions []*Region
	// Points are the raw range sensor returns captured with the frame
	Points []RangePoint
}

// AssociationMap maps a current-frame region ID to the best matching
// previous-frame region ID.  Built fresh per frame pair with at most one
// entry per current-frame region
type AssociationMap map[int]int

// RegionIDGenerator holds a counter for generating the next incremental
// region ID number, for use by detector adapters that have no identifiers
// of their own
type RegionIDGenerator struct {
	id int
	sync.Mutex
}

func NewRegionIDGenerator() *RegionIDGenerator {
	return &RegionIDGenerator{}
}

// GetNext returns the next incremental number
func (g *RegionIDGenerator) GetNext() int {
	g.Lock()
	defer g.Unlock()
	id := g.id
	g.id++
	return id
}
