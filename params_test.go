package camttc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {

	p := DefaultParams()

	require.NoError(t, p.Validate())

	assert.EqualValues(t, DefaultShrinkFactor, p.ShrinkFactor)
	assert.EqualValues(t, DefaultLaneWidth, p.LaneWidth)
	assert.EqualValues(t, DefaultLaneQuantile, p.LaneQuantile)
	assert.EqualValues(t, DefaultMinPairDist, p.MinPairDist)
	assert.EqualValues(t, DefaultMatchDistFactor, p.MatchDistFactor)
}

func TestParamsValidate(t *testing.T) {

	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative shrink", func(p *Params) { p.ShrinkFactor = -0.1 }},
		{"shrink of one", func(p *Params) { p.ShrinkFactor = 1 }},
		{"zero lane width", func(p *Params) { p.LaneWidth = 0 }},
		{"quantile of zero", func(p *Params) { p.LaneQuantile = 0 }},
		{"quantile of one", func(p *Params) { p.LaneQuantile = 1 }},
		{"negative pair distance", func(p *Params) { p.MinPairDist = -1 }},
		{"zero dist factor", func(p *Params) { p.MatchDistFactor = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestLoadParamsPartial(t *testing.T) {

	path := filepath.Join(t.TempDir(), "tuning.json")

	require.NoError(t,
		os.WriteFile(path, []byte(`{"lane_width": 3.5}`), 0644))

	p, err := LoadParams(path)

	require.NoError(t, err)

	// overridden field
	assert.EqualValues(t, 3.5, p.LaneWidth)

	// omitted fields keep their defaults
	assert.EqualValues(t, DefaultShrinkFactor, p.ShrinkFactor)
	assert.EqualValues(t, DefaultMinPairDist, p.MinPairDist)
}

func TestLoadParamsBadFile(t *testing.T) {

	_, err := LoadParams("tuning.yaml")
	assert.Error(t, err, "non-json extension must be rejected")

	path := filepath.Join(t.TempDir(), "bad.json")

	require.NoError(t,
		os.WriteFile(path, []byte(`{"shrink_factor": 2.0}`), 0644))

	_, err = LoadParams(path)
	assert.Error(t, err, "out of range value must fail validation")
}
