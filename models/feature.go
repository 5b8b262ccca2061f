package models

// FeatureRow is one record fed to the model: numeric values in the
// pipeline's numeric column order followed by categorical values in its
// categorical column order. An empty string marks an absent category.
type FeatureRow struct {
	Nums []float64
	Cats []string
}
