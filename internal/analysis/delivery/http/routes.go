package http

import (
	"github.com/gin-gonic/gin"

	"emotiai/internal/middleware"
)

// RegisterRoutes maps the analysis endpoints under rg, which is mounted at /api.
// Only the provider-backed endpoints are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/detect-emotion", mw.RateLimit(), h.DetectEmotion)
	rg.POST("/analyze-sentiment", mw.RateLimit(), h.AnalyzeSentiment)
	rg.POST("/generate-response", mw.RateLimit(), h.GenerateResponse)

	rg.GET("/v1/schemas", h.Schemas)
}
