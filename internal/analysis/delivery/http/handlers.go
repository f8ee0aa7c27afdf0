package http

import (
	"github.com/gin-gonic/gin"

	"emotiai/internal/analysis/upstream"
	"emotiai/pkg/response"
)

// DetectEmotion godoc
// @Summary     Detect emotions in text
// @Description Scores the six emotion labels. When the provider fails the keyword estimator answers and note is "fallback".
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Text to analyze"
// @Success     200  {object} detectEmotionResp
// @Failure     400  {object} response.Resp "Text is required"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/detect-emotion [POST]
func (h *handler) DetectEmotion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DetectEmotion(ctx, req.toDetectEmotionInput())
	if err != nil {
		h.respondError(c, "uc.DetectEmotion", err)
		return
	}

	response.OK(c, h.newDetectEmotionResp(output))
}

// AnalyzeSentiment godoc
// @Summary     Analyze sentiment, entities and topics
// @Description Returns a score in [-1,1] with its label. When the provider fails the keyword estimator answers and note is "fallback".
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Text to analyze"
// @Success     200  {object} analyzeSentimentResp
// @Failure     400  {object} response.Resp "Text is required"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/analyze-sentiment [POST]
func (h *handler) AnalyzeSentiment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AnalyzeSentiment(ctx, req.toAnalyzeSentimentInput())
	if err != nil {
		h.respondError(c, "uc.AnalyzeSentiment", err)
		return
	}

	response.OK(c, h.newAnalyzeSentimentResp(output))
}

// GenerateResponse godoc
// @Summary     Generate a conversational reply
// @Description Produces an empathetic reply to text, optionally using prior context and a detected emotion. When the provider fails a canned reply is returned and note is "fallback".
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Message, context and emotion"
// @Success     200  {object} generateResponseResp
// @Failure     400  {object} response.Resp "Text is required"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/generate-response [POST]
func (h *handler) GenerateResponse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GenerateResponse(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.GenerateResponse", err)
		return
	}

	response.OK(c, h.newGenerateResponseResp(output))
}

// Schemas godoc
// @Summary     Provider payload schemas
// @Description Lists the JSON Schema of every provider payload the service decodes.
// @Tags        Analysis
// @Produce     json
// @Success     200 {object} schemasResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schemas [GET]
func (h *handler) Schemas(c *gin.Context) {
	contracts, err := upstream.Contracts()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "upstream.Contracts: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, schemasResp{Contracts: contracts})
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	mapped := h.mapError(err)
	if mapped == nil {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, nil)
}
