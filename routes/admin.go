package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laptop-service-center/services"
	ws "laptop-service-center/websocket"
)

type adminHandler struct {
	auth   services.Authenticator
	tokens TokenService
	hub    *ws.Hub
	logger *zap.Logger
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAdminRoutes registers the admin login and the live complaint feed
func RegisterAdminRoutes(router *gin.RouterGroup, h *adminHandler, adminGuard gin.HandlerFunc) {
	admin := router.Group("/admin")
	{
		admin.POST("/login", h.login)
		admin.GET("/ws", adminGuard, h.feed)
	}
}

func (h *adminHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("🔒 Admin login rejected", zap.String("client_ip", c.ClientIP()))
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("🔓 Admin logged in", zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// feed upgrades to a websocket that streams complaint events
func (h *adminHandler) feed(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Live feed not available"})
		return
	}
	ws.ServeWebSocket(h.hub, c.Writer, c.Request)
}
