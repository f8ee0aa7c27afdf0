package httpserver

import (
	"context"

	analysisHTTP "emotiai/internal/analysis/delivery/http"
	"emotiai/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupAnalysisDomain registers the analysis handlers under /api.
// The use case is built in main because its adapters depend on provider config.
func (srv HTTPServer) setupAnalysisDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := analysisHTTP.New(srv.l, srv.analysisUC)

	// Routes: /api/detect-emotion, /api/analyze-sentiment, /api/generate-response, /api/v1/schemas
	analysisHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
