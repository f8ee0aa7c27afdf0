package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "emotiai/pkg/errors"
)

// processTextReq binds the body shared by detect-emotion and analyze-sentiment.
func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "delivery.processTextReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processGenerateReq binds the generate-response body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "delivery.processGenerateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
