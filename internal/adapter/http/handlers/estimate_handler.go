package handlers

import (
	"errors"
	"io"
	"net/http"

	"bidboard/internal/adapter/http/dto/request"
	"bidboard/internal/adapter/http/dto/response"
	"bidboard/internal/usecase"
	"bidboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidStatusPayload   = pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of Draft, Submitted, Won, Lost", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates, their line items and the pipeline board.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create a Draft estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateEstimateRequest  false  "Customer"
// @Success      201   {object}  response.EstimateResponse
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.CustomerID)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// ListEstimates godoc
// @Summary      List estimates, newest first
// @Tags         estimates
// @Produce      json
// @Success      200  {array}  response.EstimateResponse
// @Router       /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetEstimate godoc
// @Summary      Get an estimate with its pricing breakdown
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateEstimateFields godoc
// @Summary      Edit estimate fields (name, location, margin, tax, ...)
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Estimate ID"
// @Param        body  body      request.EstimateFieldsRequest  true  "Fields"
// @Success      200   {object}  response.EstimateResponse
// @Router       /estimates/{id} [patch]
func (h *EstimateHandler) UpdateEstimateFields(c *gin.Context) {
	var payload request.EstimateFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	fields, err := payload.ToFields()
	if err != nil {
		respondError(c, errInvalidStatusPayload)
		return
	}

	estimate, err := h.usecase.SetEstimateFields(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// SetStatus godoc
// @Summary      Move an estimate to another pipeline column
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Estimate ID"
// @Param        body  body      request.StatusRequest  true  "Status"
// @Success      200   {object}  response.EstimateResponse
// @Router       /estimates/{id}/status [patch]
func (h *EstimateHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		respondError(c, errInvalidStatusPayload)
		return
	}

	estimate, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// AddLineItem godoc
// @Summary      Append a line item (qty 1, rate 0 unless given)
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true   "Estimate ID"
// @Param        body  body      request.LineItemRequest  false  "Seed fields"
// @Success      201   {object}  response.EstimateResponse
// @Router       /estimates/{id}/line-items [post]
func (h *EstimateHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	estimate, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// UpdateLineItem godoc
// @Summary      Edit a line item; amount is recomputed from qty and rate
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Estimate ID"
// @Param        item_id  path      string                    true  "Line item ID"
// @Param        body     body      request.LineItemRequest  true  "Changed fields"
// @Success      200      {object}  response.EstimateResponse
// @Router       /estimates/{id}/line-items/{item_id} [patch]
func (h *EstimateHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}

	estimate, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToFields())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// RemoveLineItem godoc
// @Summary      Remove a line item
// @Tags         line-items
// @Produce      json
// @Param        id       path      string  true  "Estimate ID"
// @Param        item_id  path      string  true  "Line item ID"
// @Success      200      {object}  response.EstimateResponse
// @Router       /estimates/{id}/line-items/{item_id} [delete]
func (h *EstimateHandler) RemoveLineItem(c *gin.Context) {
	estimate, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ImportLineItems godoc
// @Summary      Append a batch of extracted line items as one update
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Estimate ID"
// @Param        body  body      request.ImportLineItemsRequest  true  "Items"
// @Success      200   {object}  response.EstimateResponse
// @Router       /estimates/{id}/line-items/import [post]
func (h *EstimateHandler) ImportLineItems(c *gin.Context) {
	var payload request.ImportLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidEstimatePayload)
		return
	}

	estimate, err := h.usecase.BulkImport(c.Request.Context(), c.Param("id"), payload.ToFields())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetBoard godoc
// @Summary      Kanban board grouped by status
// @Tags         pipeline
// @Produce      json
// @Param        q    query     string  false  "Search estimate or customer name"
// @Success      200  {array}   response.ColumnResponse
// @Router       /pipeline/board [get]
func (h *EstimateHandler) GetBoard(c *gin.Context) {
	cols, err := h.usecase.Board(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(cols))
}

// GetStats godoc
// @Summary      Dashboard pipeline stats
// @Tags         pipeline
// @Produce      json
// @Success      200  {object}  pipeline.Stats
// @Router       /pipeline/stats [get]
func (h *EstimateHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// bindOptionalJSON binds the body when present. It writes a 400 and returns
// false on malformed JSON.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errInvalidEstimatePayload)
		return false
	}
	return true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidLineItemID), errors.Is(err, usecase.ErrInvalidEstimateVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidStatusPayload
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDocument), errors.Is(err, usecase.ErrEmptySiteNotes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStaleAIResponse):
		return pkg.NewDomainErrorSimple("STALE_AI_RESPONSE", "Estimate changed while the AI request was running", http.StatusConflict)
	case errors.Is(err, usecase.ErrAIServiceNotConfigured):
		return pkg.NewDomainErrorSimple("AI_NOT_CONFIGURED", "AI service is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrAIService):
		return pkg.NewDomainError("AI_SERVICE_ERROR", "AI request failed. Please try again.", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
