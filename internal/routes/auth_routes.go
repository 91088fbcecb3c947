package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(apiV1 *gin.RouterGroup, h *handlers.AuthHandler, requireAuth gin.HandlerFunc) {
	authGroup := apiV1.Group("/auth")
	{
		// POST /api/v1/auth/login
		authGroup.POST("/login", h.Login)
		// POST /api/v1/auth/logout
		authGroup.POST("/logout", requireAuth, h.Logout)
	}
}
