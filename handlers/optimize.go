package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"price-optimization-api/models"
	"price-optimization-api/services"
)

type OptimizeHandler struct {
	svc     *services.PredictorService
	cache   *services.CacheService
	history *services.HistoryService
}

func NewOptimizeHandler(svc *services.PredictorService, cache *services.CacheService, history *services.HistoryService) *OptimizeHandler {
	return &OptimizeHandler{svc: svc, cache: cache, history: history}
}

func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	minPrice, err := floatQuery(c, "min_price", 1.0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price parameter"})
		return
	}
	maxPrice, err := floatQuery(c, "max_price", 300.0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price parameter"})
		return
	}
	step, err := floatQuery(c, "step", 1.0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step parameter"})
		return
	}

	result, err := h.svc.Optimize(req, minPrice, maxPrice, step)
	if errors.Is(err, services.ErrModelUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
		return
	}
	if errors.Is(err, services.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "optimization failed"})
		return
	}

	go func() {
		ctx := context.Background()
		h.cache.Publish(ctx, services.PredictionsChannel, gin.H{
			"kind":   "optimize",
			"result": result,
		})
		h.history.Record(ctx, models.PredictionRecord{
			TS:              time.Now().UTC(),
			Kind:            "optimize",
			UnitPrice:       result.BestPrice,
			FreightPrice:    *req.FreightPrice,
			PredictedQty:    result.BestQty,
			PredictedProfit: result.BestProfit,
		})
	}()

	c.JSON(http.StatusOK, result)
}

func floatQuery(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}
