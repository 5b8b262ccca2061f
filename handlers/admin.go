package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"price-optimization-api/services"
)

type AdminHandler struct {
	store *services.ModelStore
}

func NewAdminHandler(store *services.ModelStore) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetModel reports the load state and, when present, the metadata
// descriptor of the serving artifact.
func (h *AdminHandler) GetModel(c *gin.Context) {
	model, meta := h.store.Get()
	resp := gin.H{"model_loaded": model != nil}
	if meta != nil {
		resp["metadata"] = meta
	}
	c.JSON(http.StatusOK, resp)
}

// Reload drops the cached artifact and loads fresh state from disk.
func (h *AdminHandler) Reload(c *gin.Context) {
	h.store.Reload()
	c.JSON(http.StatusOK, gin.H{
		"message":      "model store reloaded",
		"model_loaded": h.store.Loaded(),
	})
}
