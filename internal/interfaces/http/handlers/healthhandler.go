package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthInfo is reported verbatim by the health endpoint.
type HealthInfo struct {
	Version     string
	Environment string
	Commit      string
}

type HealthHandler struct {
	info HealthInfo
}

func NewHealthHandler(info HealthInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"version":     h.info.Version,
		"environment": h.info.Environment,
		"commit":      h.info.Commit,
	})
}
