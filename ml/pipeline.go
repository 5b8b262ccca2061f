package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"price-optimization-api/models"
)

// Pipeline is the fitted regression pipeline: standard-scaled numeric
// features, one-hot encoded categorical features, and a gradient boosted
// tree ensemble. Once fitted it is immutable and safe for concurrent use.
type Pipeline struct {
	NumCols  []string
	CatCols  []string
	Scaler   *StandardScaler
	Encoder  *OneHotEncoder
	Ensemble *GradientBoosting
}

// Fit trains a pipeline. nums is row-major and aligned with numCols;
// cats is row-major and aligned with catCols; y holds the regression
// targets (already transformed by the caller).
func Fit(cfg TrainConfig, numCols, catCols []string, nums [][]float64, cats [][]string, y []float64) (*Pipeline, error) {
	n := len(nums)
	if n == 0 {
		return nil, fmt.Errorf("fit: no samples")
	}
	if len(y) != n {
		return nil, fmt.Errorf("fit: %d samples but %d targets", n, len(y))
	}
	for i, row := range nums {
		if len(row) != len(numCols) {
			return nil, fmt.Errorf("fit: sample %d has %d numeric values, want %d", i, len(row), len(numCols))
		}
	}

	numColMajor := make([][]float64, len(numCols))
	for j := range numCols {
		col := make([]float64, n)
		for i := range nums {
			col[i] = nums[i][j]
		}
		numColMajor[j] = col
	}
	catColMajor := make([][]string, len(catCols))
	for j := range catCols {
		col := make([]string, n)
		for i := range cats {
			if j < len(cats[i]) {
				col[i] = cats[i][j]
			}
		}
		catColMajor[j] = col
	}

	p := &Pipeline{
		NumCols: numCols,
		CatCols: catCols,
		Scaler:  fitScaler(numColMajor),
		Encoder: fitEncoder(catColMajor),
	}

	X := make([][]float64, n)
	for i := range nums {
		catRow := []string(nil)
		if i < len(cats) {
			catRow = cats[i]
		}
		X[i] = p.design(nums[i], catRow)
	}
	p.Ensemble = fitBoosting(cfg, X, y)
	return p, nil
}

// Predict returns one log-scale prediction per feature row. Rows must
// carry exactly the numeric layout the pipeline was fitted on.
func (p *Pipeline) Predict(rows []models.FeatureRow) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row.Nums) != len(p.NumCols) {
			return nil, fmt.Errorf("feature row %d has %d numeric values, pipeline expects %d", i, len(row.Nums), len(p.NumCols))
		}
		out[i] = p.Ensemble.predict(p.design(row.Nums, row.Cats))
	}
	return out, nil
}

func (p *Pipeline) design(nums []float64, cats []string) []float64 {
	return append(p.Scaler.Transform(nums), p.Encoder.Transform(cats)...)
}

// Save writes the fitted pipeline to path as a gob stream, creating the
// parent directory if needed.
func (p *Pipeline) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save pipeline: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save pipeline: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("save pipeline: encode: %w", err)
	}
	return nil
}

// Load reads a previously saved pipeline from path.
func Load(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load pipeline: %w", err)
	}
	defer f.Close()

	var p Pipeline
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("load pipeline: decode: %w", err)
	}
	if p.Ensemble == nil || p.Scaler == nil || p.Encoder == nil {
		return nil, fmt.Errorf("load pipeline: artifact at %s is incomplete", path)
	}
	return &p, nil
}
