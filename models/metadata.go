package models

// Metadata is the descriptor the trainer writes next to the model
// artifact. NumCols and CatCols fix the exact column order the artifact
// was fitted on; the feature builder must reproduce it.
type Metadata struct {
	TrainedAt       string   `json:"trained_at"`
	ModelPath       string   `json:"model_path"`
	MetadataVersion int      `json:"metadata_version"`
	NumCols         []string `json:"num_cols"`
	CatCols         []string `json:"cat_cols"`
	Target          string   `json:"target"`
}
