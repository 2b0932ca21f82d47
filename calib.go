package camttc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// Calibration holds the three fixed transform matrices needed to project a
// range sensor return into camera pixel coordinates: the camera projection
// matrix (3x4), the rectification matrix (4x4) and the sensor-to-camera
// extrinsic matrix (4x4).  The matrices are constant for a run and a
// Calibration is safe for concurrent use once constructed
type Calibration struct {
	proj *mat.Dense
	rect *mat.Dense
	extr *mat.Dense
	// chain is the precomputed 3x4 product proj * rect * extr
	chain *mat.Dense
}

// NewCalibration creates a Calibration from the projection (3x4),
// rectification (4x4) and sensor-to-camera extrinsic (4x4) matrices and
// precomputes the combined transform chain
func NewCalibration(proj, rect, extr *mat.Dense) (*Calibration, error) {

	if err := checkDims(proj, 3, 4, "projection"); err != nil {
		return nil, err
	}

	if err := checkDims(rect, 4, 4, "rectification"); err != nil {
		return nil, err
	}

	if err := checkDims(extr, 4, 4, "extrinsic"); err != nil {
		return nil, err
	}

	// combine the transforms once, projection of a single point is then a
	// single 3x4 by 4x1 multiply
	tmp := mat.NewDense(3, 4, nil)
	tmp.Mul(proj, rect)

	chain := mat.NewDense(3, 4, nil)
	chain.Mul(tmp, extr)

	return &Calibration{
		proj:  proj,
		rect:  rect,
		extr:  extr,
		chain: chain,
	}, nil
}

// checkDims verifies a matrix has the expected dimensions
func checkDims(m *mat.Dense, rows, cols int, name string) error {

	if m == nil {
		return fmt.Errorf("%s matrix is nil", name)
	}

	r, c := m.Dims()

	if r != rows || c != cols {
		return fmt.Errorf("%s matrix must be %dx%d, got %dx%d",
			name, rows, cols, r, c)
	}

	return nil
}

// Project maps a range sensor return into camera pixel coordinates by
// applying the combined transform chain to the homogeneous point and
// performing the perspective divide.  ok is false when the point projects
// to a depth at or behind the camera plane, such points carry no pixel
// location and callers must drop them
func (c *Calibration) Project(p RangePoint) (u, v float32, ok bool) {

	x := mat.NewVecDense(4, []float64{p.Pos.X, p.Pos.Y, p.Pos.Z, 1})

	y := mat.NewVecDense(3, nil)
	y.MulVec(c.chain, x)

	depth := y.AtVec(2)

	if depth <= 0 {
		return 0, 0, false
	}

	return float32(y.AtVec(0) / depth), float32(y.AtVec(1) / depth), true
}

// calibrationFile is the on disk JSON representation of a Calibration with
// matrices given in row-major order
type calibrationFile struct {
	Projection    []float64 `json:"projection"`    // 3x4, 12 values
	Rectification []float64 `json:"rectification"` // 4x4, 16 values
	Extrinsic     []float64 `json:"extrinsic"`     // 4x4, 16 values
}

// LoadCalibration loads a Calibration from a JSON file containing the three
// matrices in row-major order
func LoadCalibration(path string) (*Calibration, error) {

	cleanPath := filepath.Clean(path)

	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("calibration file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)

	if err != nil {
		return nil, fmt.Errorf("failed to read calibration file: %w", err)
	}

	var cf calibrationFile

	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse calibration file: %w", err)
	}

	if len(cf.Projection) != 12 {
		return nil, fmt.Errorf("projection matrix needs 12 values, got %d", len(cf.Projection))
	}

	if len(cf.Rectification) != 16 {
		return nil, fmt.Errorf("rectification matrix needs 16 values, got %d", len(cf.Rectification))
	}

	if len(cf.Extrinsic) != 16 {
		return nil, fmt.Errorf("extrinsic matrix needs 16 values, got %d", len(cf.Extrinsic))
	}

	return NewCalibration(
		mat.NewDense(3, 4, cf.Projection),
		mat.NewDense(4, 4, cf.Rectification),
		mat.NewDense(4, 4, cf.Extrinsic),
	)
}
