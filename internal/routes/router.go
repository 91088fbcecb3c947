package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/share_registry/docs" // 注册 swagger 文档
	"github.com/share_registry/internal/auth"
	"github.com/share_registry/internal/handlers"
)

// Handlers 汇总所有路由使用的处理器
type Handlers struct {
	Auth        *handlers.AuthHandler
	Cases       *handlers.CaseHandler
	Companies   *handlers.CompanyHandler
	Registrars  *handlers.RegistrarHandler
	NameChanges *handlers.NameChangeHandler
}

// SetupRoutes 初始化所有路由，除登录外的 /api/v1 接口都需要 JWT
func SetupRoutes(router *gin.Engine, h Handlers, jwtSecret string, denylist auth.Denylist) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	requireAuth := auth.JWTMiddleware(jwtSecret, denylist)

	SetupAuthRoutes(apiV1, h.Auth, requireAuth)

	secured := apiV1.Group("")
	secured.Use(requireAuth)
	SetupCaseRoutes(secured, h.Cases)
	SetupMasterDataRoutes(secured, h)
}
