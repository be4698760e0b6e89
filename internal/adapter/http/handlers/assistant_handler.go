package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"bidboard/internal/adapter/http/dto/request"
	"bidboard/internal/adapter/http/dto/response"
	"bidboard/internal/usecase"
	"bidboard/pkg"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

var errInvalidUpload = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "An image file is required (max 10MB)", http.StatusBadRequest)

// AssistantHandler exposes the AI-assisted workflows. Failures are reported to
// the caller and never change stored estimates.
type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// SelectActiveEstimate records which estimate the builder has open.
// An empty estimate_id closes the builder.
func (h *AssistantHandler) SelectActiveEstimate(c *gin.Context) {
	var payload request.ActiveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	if err := h.usecase.SelectEstimate(c.Request.Context(), payload.EstimateID); err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.ActiveEstimateResponse{EstimateID: h.usecase.ActiveEstimateID()})
}

func (h *AssistantHandler) GetActiveEstimate(c *gin.Context) {
	c.JSON(http.StatusOK, response.ActiveEstimateResponse{EstimateID: h.usecase.ActiveEstimateID()})
}

// AuditEstimate godoc
// @Summary      AI risk audit of an estimate
// @Tags         ai
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  entities.AIInsight
// @Failure      502  {object}  pkg.HTTPError
// @Router       /estimates/{id}/ai/audit [post]
func (h *AssistantHandler) AuditEstimate(c *gin.Context) {
	insight, err := h.usecase.AuditEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, insight)
}

// SuggestMaterials opens the estimate in the builder and returns a batch of
// suggestions tagged with the builder generation.
func (h *AssistantHandler) SuggestMaterials(c *gin.Context) {
	batch, err := h.usecase.SuggestMaterials(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, batch)
}

// ApplySuggestion godoc
// @Summary      Add an AI suggestion to the estimate
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Estimate ID"
// @Param        payload  body      request.ApplySuggestionRequest  true  "Suggestion and the generation it was issued with"
// @Success      201      {object}  response.EstimateResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates/{id}/ai/suggestions/apply [post]
func (h *AssistantHandler) ApplySuggestion(c *gin.Context) {
	var payload request.ApplySuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	estimate, err := h.usecase.ApplySuggestion(c.Request.Context(), c.Param("id"), payload.Generation, payload.ToSuggestedItem())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// ScanDocument godoc
// @Summary      Extract line items from a document photo and import them
// @Tags         ai
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Estimate ID"
// @Param        file  formData  file    true  "Invoice, quote or site note image"
// @Success      200   {object}  response.EstimateResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /estimates/{id}/ai/scan [post]
func (h *AssistantHandler) ScanDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, errInvalidUpload)
		return
	}
	data, mimeType, err := readUpload(fh)
	if err != nil {
		log.Printf("[ai][handler] scan upload rejected estimate_id=%s err=%v", c.Param("id"), err)
		respondError(c, errInvalidUpload)
		return
	}

	estimate, err := h.usecase.ScanDocument(c.Request.Context(), c.Param("id"), data, mimeType)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GenerateSiteReport accepts multipart "notes" and an optional "image".
func (h *AssistantHandler) GenerateSiteReport(c *gin.Context) {
	notes := c.PostForm("notes")
	var (
		data     []byte
		mimeType string
	)
	if fh, err := c.FormFile("image"); err == nil {
		if data, mimeType, err = readUpload(fh); err != nil {
			respondError(c, errInvalidUpload)
			return
		}
	}

	report, err := h.usecase.GenerateSiteReport(c.Request.Context(), notes, data, mimeType)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// SalesAdvice streams the answer as server-sent events: one "chunk" event per
// fragment, then "done" with the accumulated message, or "error".
func (h *AssistantHandler) SalesAdvice(c *gin.Context) {
	var payload request.SalesAdviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}

	chunks, err := h.usecase.StreamSalesAdvice(c.Request.Context(), payload.ToHistory(time.Now().UTC()))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	var full strings.Builder
	for chunk, err := range chunks {
		if err != nil {
			appErr := mapEstimateError(err)
			c.SSEvent("error", appErr.ToHTTPError())
			c.Writer.Flush()
			return
		}
		full.WriteString(chunk)
		c.SSEvent("chunk", gin.H{"text": chunk})
		c.Writer.Flush()
	}
	c.SSEvent("done", gin.H{"text": full.String()})
	c.Writer.Flush()
}

func (h *AssistantHandler) MarketIntelligence(c *gin.Context) {
	insight, err := h.usecase.MarketIntelligence(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, insight)
}

func readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh.Size > maxUploadBytes {
		return nil, "", fmt.Errorf("file too large: %d bytes", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 || len(data) > maxUploadBytes {
		return nil, "", fmt.Errorf("invalid file size: %d bytes", len(data))
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}
