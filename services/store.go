package services

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"price-optimization-api/config"
	"price-optimization-api/ml"
	"price-optimization-api/models"
)

// Model is the predict contract the serving path depends on. How the
// artifact was fitted is invisible here.
type Model interface {
	Predict(rows []models.FeatureRow) ([]float64, error)
}

// ModelStore owns the lazily loaded artifact and metadata. Both are
// independently optional: a missing or corrupt file is logged and left
// absent, and callers report unavailability instead of crashing. After
// the first load the values are shared read-only across requests.
type ModelStore struct {
	modelPath    string
	metadataPath string

	mu     sync.Mutex
	loaded bool
	model  Model
	meta   *models.Metadata
}

func NewModelStore(cfg config.ModelConfig) *ModelStore {
	return &ModelStore{
		modelPath:    cfg.ModelPath,
		metadataPath: cfg.MetadataPath,
	}
}

// NewStaticModelStore returns a store pre-populated with the given
// artifact and metadata, bypassing disk entirely.
func NewStaticModelStore(model Model, meta *models.Metadata) *ModelStore {
	return &ModelStore{loaded: true, model: model, meta: meta}
}

// Get returns the artifact and metadata, loading them on first use. The
// load-once transition is mutex guarded so concurrent first requests
// trigger a single load.
func (s *ModelStore) Get() (Model, *models.Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.model, s.meta = s.load()
		s.loaded = true
	}
	return s.model, s.meta
}

// Loaded reports whether the artifact is available, loading on first call.
func (s *ModelStore) Loaded() bool {
	model, _ := s.Get()
	return model != nil
}

// Reload drops the cached state so the next request reads fresh files.
func (s *ModelStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.model = nil
	s.meta = nil
}

func (s *ModelStore) load() (Model, *models.Metadata) {
	var model Model
	pipe, err := ml.Load(s.modelPath)
	if err != nil {
		modelLoadFailures.Inc()
		log.Printf("model artifact not loaded from %s: %v", s.modelPath, err)
	} else {
		model = pipe
		log.Printf("model artifact loaded from %s", s.modelPath)
	}

	var meta *models.Metadata
	data, err := os.ReadFile(s.metadataPath)
	if err != nil {
		log.Printf("metadata not loaded from %s: %v", s.metadataPath, err)
	} else {
		var m models.Metadata
		if err := json.Unmarshal(data, &m); err != nil {
			log.Printf("metadata parse failed for %s: %v", s.metadataPath, err)
		} else {
			meta = &m
		}
	}
	return model, meta
}
