package handlers

import (
	"ecoroute/internal/utils"
	"ecoroute/pkg/cache"

	"github.com/gin-gonic/gin"
)

const (
	GuardStatusOK       = "ok"
	GuardStatusDegraded = "degraded"
)

type HealthHandler struct {
	version    string
	aiProvider string
	guard      cache.Guard
	mapsReady  bool
}

func NewHealthHandler(version, aiProvider string, guard cache.Guard, mapsReady bool) *HealthHandler {
	return &HealthHandler{
		version:    version,
		aiProvider: aiProvider,
		guard:      guard,
		mapsReady:  mapsReady,
	}
}

// Health stays 200 when the guard store is unreachable because submissions
// are still admitted without it.
func (h *HealthHandler) Health(c *gin.Context) {
	guardStatus := GuardStatusOK
	if err := h.guard.Ping(c.Request.Context()); err != nil {
		guardStatus = GuardStatusDegraded
	}

	utils.SuccessResponse(c, "Service is healthy", gin.H{
		"service":                 utils.AppName,
		"version":                 h.version,
		"ai_provider":             h.aiProvider,
		"submission_guard":        h.guard.Name(),
		"submission_guard_status": guardStatus,
		"maps_configured":         h.mapsReady,
	})
}
