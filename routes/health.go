package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"laptop-service-center/database"
)

// RegisterHealthRoutes registers the database connectivity check
func RegisterHealthRoutes(router *gin.RouterGroup, db *gorm.DB) {
	router.GET("/test", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database not configured"})
			return
		}
		if err := database.Ping(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database connection successful"})
	})
}
