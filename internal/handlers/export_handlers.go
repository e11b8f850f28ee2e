package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planora/budget-api/internal/export"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles budget download endpoints
type ExportHandler struct {
	budgetSvc *services.BudgetService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(budgetSvc *services.BudgetService) *ExportHandler {
	return &ExportHandler{
		budgetSvc: budgetSvc,
	}
}

// Export handles GET /events/:id/budget/export
func (h *ExportHandler) Export(c *gin.Context) {
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

	f, err := export.BudgetWorkbook(resp.Plan, resp.Tracking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="event-%d-budget.xlsx"`, eventID))
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}
