package ml

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers and scales numeric features to zero mean and
// unit variance, column by column.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// fitScaler computes per-column mean and standard deviation.
// cols is column-major: cols[j] holds every sample's value for column j.
// A constant column gets a unit deviation so Transform stays finite.
func fitScaler(cols [][]float64) *StandardScaler {
	s := &StandardScaler{
		Mean: make([]float64, len(cols)),
		Std:  make([]float64, len(cols)),
	}
	for j, col := range cols {
		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = stat.StdDev(col, nil)
		if s.Std[j] == 0 || math.IsNaN(s.Std[j]) {
			s.Std[j] = 1
		}
	}
	return s
}

// Transform scales one row, returning a new slice.
func (s *StandardScaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}
