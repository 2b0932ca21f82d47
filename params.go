package camttc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultShrinkFactor is the default symmetric region shrink applied
	// before range point containment tests, to exclude edge outliers
	DefaultShrinkFactor = 0.10
	// DefaultLaneWidth is the assumed width of the ego lane in the range
	// sensor's distance units
	DefaultLaneWidth = 4.0
	// DefaultLaneQuantile is the empirical quantile of in-lane forward
	// distances used as the representative obstacle distance
	DefaultLaneQuantile = 0.2
	// DefaultMinPairDist is the minimum current-frame pixel distance a
	// keypoint pair must span to contribute a scale ratio
	DefaultMinPairDist = 100.0
	// DefaultMatchDistFactor scales the mean candidate dissimilarity to
	// the per-region correspondence rejection threshold
	DefaultMatchDistFactor = 0.7
)

// Params holds the tunable constants of the TTC pipeline.  The zero value
// is not usable, start from DefaultParams and override fields as needed.
// Fields carry JSON tags so the same schema can be used for on disk tuning
// files loaded with LoadParams
type Params struct {
	// ShrinkFactor shrinks region rectangles symmetrically before range
	// point containment tests, in the range [0,1).  0 disables shrinking
	ShrinkFactor float32 `json:"shrink_factor"`
	// LaneWidth is the full width of the ego lane band
	LaneWidth float64 `json:"lane_width"`
	// LaneQuantile selects the empirical quantile of in-lane forward
	// distances used as the closest-obstacle statistic, in (0,1)
	LaneQuantile float64 `json:"lane_quantile"`
	// MinPairDist is the minimum significant pixel distance between two
	// current-frame keypoints of a ratio pair
	MinPairDist float64 `json:"min_pair_dist"`
	// MatchDistFactor is the fraction of the mean candidate dissimilarity
	// below which a correspondence is retained
	MatchDistFactor float64 `json:"match_dist_factor"`
}

// DefaultParams returns a Params populated with the documented defaults
func DefaultParams() Params {
	return Params{
		ShrinkFactor:    DefaultShrinkFactor,
		LaneWidth:       DefaultLaneWidth,
		LaneQuantile:    DefaultLaneQuantile,
		MinPairDist:     DefaultMinPairDist,
		MatchDistFactor: DefaultMatchDistFactor,
	}
}

// Validate checks all parameter values are within their legal ranges
func (p Params) Validate() error {

	if p.ShrinkFactor < 0 || p.ShrinkFactor >= 1 {
		return fmt.Errorf("shrink_factor must be in [0,1), got %v", p.ShrinkFactor)
	}

	if p.LaneWidth <= 0 {
		return fmt.Errorf("lane_width must be positive, got %v", p.LaneWidth)
	}

	if p.LaneQuantile <= 0 || p.LaneQuantile >= 1 {
		return fmt.Errorf("lane_quantile must be in (0,1), got %v", p.LaneQuantile)
	}

	if p.MinPairDist < 0 {
		return fmt.Errorf("min_pair_dist must not be negative, got %v", p.MinPairDist)
	}

	if p.MatchDistFactor <= 0 {
		return fmt.Errorf("match_dist_factor must be positive, got %v", p.MatchDistFactor)
	}

	return nil
}

// LoadParams loads Params from a JSON tuning file.  Fields omitted from the
// file retain their default values, so partial configs are safe
func LoadParams(path string) (Params, error) {

	p := DefaultParams()

	cleanPath := filepath.Clean(path)

	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return p, fmt.Errorf("params file must have .json extension, got %q", ext)
	}

	// cap file size, tuning files are tiny
	fileInfo, err := os.Stat(cleanPath)

	if err != nil {
		return p, fmt.Errorf("failed to stat params file: %w", err)
	}

	const maxFileSize = 1 * 1024 * 1024

	if fileInfo.Size() > maxFileSize {
		return p, fmt.Errorf("params file too large: %d bytes (max %d)",
			fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)

	if err != nil {
		return p, fmt.Errorf("failed to read params file: %w", err)
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse params file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}
