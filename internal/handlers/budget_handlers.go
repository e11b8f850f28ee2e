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

// BudgetHandler handles budget recommendation and event budget endpoints
type BudgetHandler struct {
	recommendationSvc *services.RecommendationService
	budgetSvc         *services.BudgetService
	suggestionSvc     *services.SuggestionService
	validationSvc     *services.ValidationService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(recommendationSvc *services.RecommendationService, budgetSvc *services.BudgetService, suggestionSvc *services.SuggestionService, validationSvc *services.ValidationService) *BudgetHandler {
	return &BudgetHandler{
		recommendationSvc: recommendationSvc,
		budgetSvc:         budgetSvc,
		suggestionSvc:     suggestionSvc,
		validationSvc:     validationSvc,
	}
}

// Recommend handles POST /budget/recommendations
// @Summary Compute a budget recommendation
// @Description Compute per-category budget recommendations for an event from base pricing, seasonal and location adjustments, and event scale. When event_id is set the breakdown is persisted as the tracking baseline.
// @Tags budget
// @Accept json
// @Produce json
// @Param request body models.RecommendBudgetRequest true "Event parameters"
// @Success 200 {object} models.RecommendBudgetResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /budget/recommendations [post]
func (h *BudgetHandler) Recommend(c *gin.Context) {
	var req models.RecommendBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())

	plan, err := h.recommendationSvc.Recommend(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		if errors.Is(err, services.ErrUnknownEventType) || errors.Is(err, services.ErrPricingNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "pricing catalog is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	if req.EventID != nil {
		if err := h.budgetSvc.PersistBreakdown(ctx, *req.EventID, plan); err != nil {
			if errors.Is(err, repository.ErrUpstream) {
				c.JSON(http.StatusBadGateway, models.ErrorResponse{
					Error:   "upstream_unavailable",
					Message: "failed to persist breakdown",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, models.RecommendBudgetResponse{
		Plan:     plan,
		Warnings: wc.GetWarnings(),
	})
}

// GetEventBudget handles GET /events/:id/budget
// @Summary Get the assembled budget for an event
// @Description Recompute the plan from the event's current parameters, overlay the persisted breakdown, and attach tracking, adjustments and validation.
// @Tags budget
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.EventBudgetResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /events/{id}/budget [get]
func (h *BudgetHandler) GetEventBudget(c *gin.Context) {
	idStr := c.Param("id")
	eventID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid event ID",
		})
		return
	}

	ctx, _ := services.NewWarningContext(c.Request.Context())

	resp, err := h.budgetSvc.GetEventBudget(ctx, eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) || errors.Is(err, services.ErrUnknownEventType) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "budget store is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitAdjustments handles POST /events/:id/budget/adjustments
func (h *BudgetHandler) SubmitAdjustments(c *gin.Context) {
	idStr := c.Param("id")
	eventID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid event ID",
		})
		return
	}

	var req models.SubmitAdjustmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	adjustments, err := h.budgetSvc.SubmitAdjustments(c.Request.Context(), eventID, req.Adjustments)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAdjustment) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "event not found",
			})
			return
		}
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "budget store is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"adjustments": adjustments})
}

// Suggestions handles POST /budget/suggestions
func (h *BudgetHandler) Suggestions(c *gin.Context) {
	var plan models.BudgetPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	suggestions, total := h.suggestionSvc.Generate(c.Request.Context(), &plan)

	c.JSON(http.StatusOK, models.SuggestionsResponse{
		Suggestions:    suggestions,
		TotalPotential: total,
	})
}

// Validate handles POST /budget/validate
func (h *BudgetHandler) Validate(c *gin.Context) {
	var plan models.BudgetPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.validationSvc.Validate(&plan))
}
