package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"laptop-service-center/config"
	"laptop-service-center/middleware"
	"laptop-service-center/models"
	"laptop-service-center/services"
	"laptop-service-center/storage"
	"laptop-service-center/types"
	ws "laptop-service-center/websocket"
)

// ComplaintService is the complaint workflow used by the HTTP layer
type ComplaintService interface {
	Validate(form *models.ComplaintForm) error
	Submit(ctx context.Context, form models.ComplaintForm, imageURL *string) (string, error)
	Track(ctx context.Context, publicID string) (*services.ComplaintView, error)
	Search(ctx context.Context, term string) ([]services.ComplaintView, error)
	SetStatus(ctx context.Context, publicID, status string) error
	Stats(ctx context.Context) (*services.ComplaintStats, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, input models.FeedbackCreate) (uint, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

// TokenService issues and verifies admin session tokens
type TokenService interface {
	Issue(user *services.AdminUser) (string, error)
	Verify(token string) (*types.Claims, error)
}

// Dependencies holds everything the router wires into handlers.
// Hub and RateLimiter are optional.
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	Complaints  ComplaintService
	Feedback    FeedbackService
	Auth        services.Authenticator
	Tokens      TokenService
	Images      storage.ImageStore
	Hub         *ws.Hub
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the gin engine with the middleware stack and every route
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.InputValidationMiddleware(maxRequestBytes(cfg.Upload.MaxBytes)))
	if deps.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(deps.RateLimiter, deps.Logger))
	}
	router.Use(middleware.AuditLogMiddleware(deps.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Laptop Service Center API is running",
			"time":    time.Now().UTC(),
		})
	})

	if cfg.Upload.Backend == "local" || cfg.Upload.Backend == "" {
		router.Static(uploadPrefix(cfg.Upload.URLPrefix), cfg.Upload.Dir)
	}

	adminGuard := middleware.AdminAuthMiddleware(deps.Tokens, cfg.Admin.RequireToken)

	api := router.Group("/api")
	RegisterHealthRoutes(api, deps.DB)
	RegisterComplaintRoutes(api, &complaintHandler{
		complaints: deps.Complaints,
		images:     deps.Images,
		maxImage:   cfg.Upload.MaxBytes,
		logger:     deps.Logger,
	}, adminGuard)
	RegisterFeedbackRoutes(api, &feedbackHandler{feedback: deps.Feedback, logger: deps.Logger}, adminGuard)
	RegisterAdminRoutes(api, &adminHandler{
		auth:   deps.Auth,
		tokens: deps.Tokens,
		hub:    deps.Hub,
		logger: deps.Logger,
	}, adminGuard)

	return router
}

// maxRequestBytes leaves room for the text fields next to a full size image
func maxRequestBytes(maxImage int64) int64 {
	if maxImage <= 0 {
		maxImage = storage.DefaultMaxBytes
	}
	return maxImage + 1<<20
}

func uploadPrefix(prefix string) string {
	if prefix == "" {
		return "/uploads"
	}
	return prefix
}

// formatDate renders dates the way the front end displays them
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
