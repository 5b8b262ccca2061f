package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"price-optimization-api/models"
)

// HistoryService appends served results to Postgres. A nil service or
// one without a database (history disabled) is valid; every method
// degrades to a no-op.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

func (s *HistoryService) Enabled() bool {
	return s != nil && s.db != nil
}

// Record appends one history row. Failures are logged, not propagated;
// history is best-effort and must never affect the response path.
func (s *HistoryService) Record(ctx context.Context, rec models.PredictionRecord) {
	if !s.Enabled() {
		return
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		log.Printf("history insert failed: %v", err)
	}
}
