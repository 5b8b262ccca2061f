package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"price-optimization-api/models"
	"price-optimization-api/services"
)

type PredictHandler struct {
	svc     *services.PredictorService
	cache   *services.CacheService
	history *services.HistoryService
}

func NewPredictHandler(svc *services.PredictorService, cache *services.CacheService, history *services.HistoryService) *PredictHandler {
	return &PredictHandler{svc: svc, cache: cache, history: history}
}

func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cacheKey := predictCacheKey(req)
	var cached models.PredictionResult
	if found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.svc.Predict(req)
	if errors.Is(err, services.ErrModelUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	go func() {
		ctx := context.Background()
		h.cache.Set(ctx, cacheKey, result, 30*time.Second)
		h.cache.Publish(ctx, services.PredictionsChannel, gin.H{
			"kind":       "predict",
			"unit_price": *req.UnitPrice,
			"result":     result,
		})
		h.history.Record(ctx, models.PredictionRecord{
			TS:              time.Now().UTC(),
			Kind:            "predict",
			UnitPrice:       *req.UnitPrice,
			FreightPrice:    *req.FreightPrice,
			PredictedQty:    result.PredictedQty,
			PredictedProfit: result.PredictedProfit,
		})
	}()

	c.JSON(http.StatusOK, result)
}

func predictCacheKey(req models.PredictRequest) string {
	return fmt.Sprintf("predict:%g:%g:%g:%g:%g:%s",
		*req.UnitPrice, *req.Comp1, *req.Comp2, *req.Comp3, *req.FreightPrice,
		req.ProductCategoryName)
}
