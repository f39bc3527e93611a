package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laptop-service-center/models"
	"laptop-service-center/services"
	"laptop-service-center/storage"
)

type complaintHandler struct {
	complaints ComplaintService
	images     storage.ImageStore
	maxImage   int64
	logger     *zap.Logger
}

// RegisterComplaintRoutes registers intake and tracking for customers and the admin views
func RegisterComplaintRoutes(router *gin.RouterGroup, h *complaintHandler, adminGuard gin.HandlerFunc) {
	complaints := router.Group("/complaints")
	{
		complaints.POST("", h.create)
		complaints.GET("/track/:id", h.track)

		complaints.GET("", adminGuard, h.list)
		complaints.GET("/stats", adminGuard, h.stats)
		complaints.PUT("/:id/status", adminGuard, h.updateStatus)
	}
}

// create handles the multipart intake form with an optional image
func (h *complaintHandler) create(c *gin.Context) {
	var form models.ComplaintForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid complaint data", "details": err.Error()})
		return
	}

	if err := h.complaints.Validate(&form); err != nil {
		respondError(c, h.logger, err)
		return
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	complaintID, err := h.complaints.Submit(c.Request.Context(), form, imageURL)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Complaint submitted successfully",
		"complaint_id": complaintID,
	})
}

// saveImage stores the optional "image" upload and returns its URL
func (h *complaintHandler) saveImage(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := storage.ValidateImage(file, h.maxImage); err != nil {
		return nil, err
	}

	url, err := h.images.Save(c.Request.Context(), file)
	if err != nil {
		return nil, err
	}
	h.logger.Info("📸 Complaint image stored", zap.String("url", url))
	return &url, nil
}

func (h *complaintHandler) track(c *gin.Context) {
	view, err := h.complaints.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":                  view.ID,
			"customerName":        view.CustomerName,
			"laptopModel":         view.LaptopModel,
			"issueDescription":    view.Issue,
			"status":              view.Status,
			"createdAt":           formatDate(view.CreatedAt),
			"estimatedCompletion": formatDate(view.EstimatedCompletion),
		},
	})
}

// list returns complaints newest first, optionally filtered by ?search=
func (h *complaintHandler) list(c *gin.Context) {
	views, err := h.complaints.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	data := make([]gin.H, 0, len(views))
	for _, v := range views {
		data = append(data, gin.H{
			"id":           v.ID,
			"customerName": v.CustomerName,
			"phone":        v.Phone,
			"laptopModel":  v.LaptopModel,
			"issue":        v.Issue,
			"status":       v.Status,
			"createdAt":    formatDate(v.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *complaintHandler) updateStatus(c *gin.Context) {
	var body models.ComplaintStatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := h.complaints.SetStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully"})
}

func (h *complaintHandler) stats(c *gin.Context) {
	stats, err := h.complaints.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	byStatus := make(gin.H, len(stats.ByStatus))
	for _, status := range models.ComplaintStatuses {
		byStatus[string(status)] = stats.ByStatus[status]
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total":     stats.Total,
			"by_status": byStatus,
		},
	})
}

var _ ComplaintService = (*services.ComplaintService)(nil)
