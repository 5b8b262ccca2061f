package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"price-optimization-api/models"
	"price-optimization-api/services"
)

// PredictionsHandler serves the persisted history of served predictions
// and optimizations, cursor-paginated newest first.
type PredictionsHandler struct {
	db    *gorm.DB
	cache *services.CacheService
}

func NewPredictionsHandler(db *gorm.DB, cache *services.CacheService) *PredictionsHandler {
	return &PredictionsHandler{db: db, cache: cache}
}

func (h *PredictionsHandler) GetHistory(c *gin.Context) {
	p, err := ParseHistoryPage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := c.Query("kind")
	if kind != "" && kind != "predict" && kind != "optimize" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be predict or optimize"})
		return
	}

	beforeStr := ""
	if p.Before != nil {
		beforeStr = p.Before.Format(time.RFC3339Nano)
	}
	cacheKey := fmt.Sprintf("history:%s:%d:%s", kind, p.Limit, beforeStr)

	var cached CursorResponse
	if found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}

	query := h.db.Model(&models.PredictionRecord{}).Order("ts DESC").Limit(p.Limit + 1)
	if p.Before != nil {
		query = query.Where("ts < ?", *p.Before)
	}
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var rows []models.PredictionRecord
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}

	hasMore := len(rows) > p.Limit
	if hasMore {
		rows = rows[:p.Limit]
	}

	var nextCursor string
	if hasMore && len(rows) > 0 {
		nextCursor = rows[len(rows)-1].TS.Format(time.RFC3339Nano)
	}

	resp := CursorResponse{Data: rows, NextCursor: nextCursor, HasMore: hasMore}
	go h.cache.Set(context.Background(), cacheKey, resp, 30*time.Second)

	c.JSON(http.StatusOK, resp)
}
