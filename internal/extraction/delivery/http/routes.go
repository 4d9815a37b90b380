package http

import (
	"github.com/gin-gonic/gin"

	"inbox-triage/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The extract endpoint is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	extraction := rg.Group("/extraction")
	{
		extraction.POST("/extract", mw.RateLimit(), h.Extract)
		extraction.POST("/calendar", h.Calendar)
	}
}
