package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laptop-service-center/models"
)

type feedbackHandler struct {
	feedback FeedbackService
	logger   *zap.Logger
}

// RegisterFeedbackRoutes registers feedback submission and the admin listing
func RegisterFeedbackRoutes(router *gin.RouterGroup, h *feedbackHandler, adminGuard gin.HandlerFunc) {
	feedback := router.Group("/feedback")
	{
		feedback.POST("", h.create)
		feedback.GET("", adminGuard, h.list)
	}
}

func (h *feedbackHandler) create(c *gin.Context) {
	var input models.FeedbackCreate
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid feedback data", "details": err.Error()})
		return
	}

	id, err := h.feedback.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Feedback submitted successfully",
		"feedback_id": id,
	})
}

func (h *feedbackHandler) list(c *gin.Context) {
	feedback, err := h.feedback.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	data := make([]gin.H, 0, len(feedback))
	for _, f := range feedback {
		data = append(data, gin.H{
			"id":           f.ID,
			"customerName": f.CustomerName,
			"email":        f.Email,
			"rating":       f.Rating,
			"comments":     f.Comments,
			"createdAt":    formatDate(f.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
