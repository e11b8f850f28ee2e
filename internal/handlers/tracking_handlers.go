package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/services"
)

// TrackingHandler handles actual-spend tracking endpoints
type TrackingHandler struct {
	trackingSvc *services.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingSvc *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingSvc: trackingSvc,
	}
}

// RecordActual handles POST /events/:id/budget/tracking
// @Summary Record actual spend for a category
// @Description Upsert the actual spend for one event category. Set expected_updated_at for conflict detection; without it, last write wins.
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body models.RecordActualRequest true "Actual spend"
// @Success 200 {object} models.TrackingEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /events/{id}/budget/tracking [post]
func (h *TrackingHandler) RecordActual(c *gin.Context) {
	idStr := c.Param("id")
	eventID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid event ID",
		})
		return
	}

	var req models.RecordActualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, _ := services.NewWarningContext(c.Request.Context())

	entry, err := h.trackingSvc.RecordActual(ctx, eventID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		if errors.Is(err, services.ErrTrackingConflict) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "conflict",
				Message: "tracking entry was modified by another writer; re-read and retry",
			})
			return
		}
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "tracking store is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Summary handles GET /events/:id/budget/tracking
func (h *TrackingHandler) Summary(c *gin.Context) {
	idStr := c.Param("id")
	eventID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid event ID",
		})
		return
	}

	summary, err := h.trackingSvc.Summary(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "tracking store is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
