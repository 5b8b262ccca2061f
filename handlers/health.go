package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"price-optimization-api/services"
)

type HealthHandler struct {
	store *services.ModelStore
}

func NewHealthHandler(store *services.ModelStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Healthz always answers 200; model_loaded reports whether the artifact
// is available (triggering the lazy load on first call).
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"model_loaded": h.store.Loaded(),
	})
}
