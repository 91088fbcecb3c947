package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/handlers"
)

// SetupCaseRoutes 设置案件路由
func SetupCaseRoutes(secured *gin.RouterGroup, h *handlers.CaseHandler) {
	cases := secured.Group("/cases")
	{
		cases.POST("", h.CreateCase)
		cases.GET("", h.GetCases)
		cases.GET("/:id", h.GetCaseByID)
		cases.PUT("/:id", h.UpdateCase)
		cases.DELETE("/:id", h.DeleteCase)
		cases.GET("/:id/view", h.GetCaseView)
		cases.POST("/:id/document", h.UploadDocument)
		cases.GET("/:id/bundle", h.DownloadBundle)
	}
}
