package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planora/budget-api/internal/middleware"
	"github.com/planora/budget-api/internal/models"
	"github.com/planora/budget-api/internal/services"
)

// FeedbackHandler handles recommendation feedback endpoints
type FeedbackHandler struct {
	feedbackSvc *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackSvc *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackSvc: feedbackSvc,
	}
}

// Submit handles POST /budget/feedback. Always answers 202: delivery to the
// analytics plane is asynchronous and never blocks the caller.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	userID := "anonymous"
	if id, ok := middleware.GetUserID(c); ok {
		userID = strconv.FormatInt(id, 10)
	}

	h.feedbackSvc.Submit(userID, &req)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
