package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/services"
	"github.com/share_registry/pkg/logging"
	"github.com/share_registry/pkg/utils"
)

// respondServiceError 按服务层错误分类映射 HTTP 状态码
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondAPIError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidRequest):
		utils.RespondBadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondUnauthorizedError(c, err.Error())
	default:
		logging.L().Error(action, zap.String("path", c.FullPath()), zap.Error(err))
		utils.RespondInternalServerError(c, action, err.Error())
	}
}

// parseIDParam 解析路径参数 :id，失败时已写入 400 响应
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondBadRequest(c, "无效的 ID: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

// bindListQuery 绑定分页参数并修正非法值
func bindListQuery(c *gin.Context) (models.ListQuery, bool) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondValidationError(c, err)
		return q, false
	}
	q.Normalize()
	return q, true
}

// optionalInt64Query 读取可选的整数查询参数，缺省为 0
func optionalInt64Query(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		utils.RespondBadRequest(c, "无效的查询参数 "+key)
		return 0, false
	}
	return v, true
}

func respondPage(c *gin.Context, items interface{}, total int64, q models.ListQuery, message string) {
	utils.RespondSuccess(c, http.StatusOK, utils.PagedData{
		Items:      items,
		Pagination: utils.NewPagination(total, q.Page, q.Limit),
	}, message)
}
