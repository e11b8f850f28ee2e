package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/services"
)

// PackageHandler handles package deal endpoints
type PackageHandler struct {
	packageSvc *services.PackageService
	budgetSvc  *services.BudgetService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageSvc *services.PackageService, budgetSvc *services.BudgetService) *PackageHandler {
	return &PackageHandler{
		packageSvc: packageSvc,
		budgetSvc:  budgetSvc,
	}
}

// List handles GET /packages
// @Summary List package deals
// @Description List the package deals available for an event type, including any deals scoped to the given city.
// @Tags packages
// @Produce json
// @Param event_type query string true "Event type"
// @Param city query string false "City for city-scoped deals"
// @Success 200 {object} models.ListPackagesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	eventType := models.EventType(c.Query("event_type"))
	if eventType == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "event_type query parameter is required",
		})
		return
	}

	loc := models.Location{City: c.Query("city"), Region: c.Query("region")}

	packages, err := h.packageSvc.List(c.Request.Context(), eventType, loc)
	if err != nil {
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "package catalog is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListPackagesResponse{
		EventType: eventType,
		Packages:  packages,
	})
}

// Apply handles POST /budget/packages/apply
func (h *PackageHandler) Apply(c *gin.Context) {
	var req models.ApplyPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	plan, err := h.packageSvc.Apply(c.Request.Context(), req.Plan, req.PackageID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPackage) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		if errors.Is(err, services.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "package deal not found",
			})
			return
		}
		if errors.Is(err, repository.ErrUpstream) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "package catalog is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	// A plan tied to an event keeps its persisted breakdown in step with
	// the applied package.
	if plan.EventID != nil {
		if err := h.budgetSvc.PersistBreakdown(c.Request.Context(), *plan.EventID, plan); err != nil {
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

	c.JSON(http.StatusOK, plan)
}
