package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/services"
	"github.com/share_registry/pkg/utils"
)

// NameChangeHandler 维护公司的名称历史
type NameChangeHandler struct {
	service services.NameChangeService
}

// NewNameChangeHandler 创建一个新的 NameChangeHandler 实例
func NewNameChangeHandler(service services.NameChangeService) *NameChangeHandler {
	return &NameChangeHandler{service: service}
}

// CreateNameChange godoc
// @Summary 新增名称变更记录
// @Tags NameChanges
// @Accept json
// @Produce json
// @Param nameChange body models.NameChangePayload true "名称变更"
// @Success 201 {object} utils.SuccessResponse{data=models.NameChangeMaster} "创建成功"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 404 {object} utils.APIErrorResponse "公司未找到"
// @Router /name-changes [post]
// @Security BearerAuth
func (h *NameChangeHandler) CreateNameChange(c *gin.Context) {
	var payload models.NameChangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	created, err := h.service.CreateNameChange(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "创建名称变更记录失败")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, created, "名称变更记录创建成功")
}

// GetNameChanges godoc
// @Summary 获取名称变更列表
// @Tags NameChanges
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param sortBy query string false "排序字段 (id, companyName, dateOfNameChange)"
// @Param sortOrder query string false "排序顺序 ('asc'或'desc')" default("desc")
// @Param search query string false "搜索关键词 (匹配名称、代码)"
// @Param companyId query int false "按公司筛选"
// @Success 200 {object} utils.SuccessResponse{data=utils.PagedData{items=[]models.NameChangeMaster}} "名称变更列表与分页信息"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Router /name-changes [get]
// @Security BearerAuth
func (h *NameChangeHandler) GetNameChanges(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	companyID, ok := optionalInt64Query(c, "companyId")
	if !ok {
		return
	}
	rows, total, err := h.service.ListNameChanges(c.Request.Context(), q, companyID)
	if err != nil {
		respondServiceError(c, err, "获取名称变更列表失败")
		return
	}
	respondPage(c, rows, total, q, "名称变更列表获取成功")
}

// GetNameChangeByID godoc
// @Summary 获取名称变更记录
// @Tags NameChanges
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.NameChangeMaster} "名称变更记录"
// @Failure 404 {object} utils.APIErrorResponse "记录未找到"
// @Router /name-changes/{id} [get]
// @Security BearerAuth
func (h *NameChangeHandler) GetNameChangeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	nc, err := h.service.GetNameChange(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取名称变更记录失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nc, "名称变更记录获取成功")
}

// UpdateNameChange godoc
// @Summary 更新名称变更记录
// @Description 记录不能改挂到其他公司
// @Tags NameChanges
// @Accept json
// @Produce json
// @Param id path int true "记录 ID"
// @Param nameChange body models.NameChangePayload true "名称变更"
// @Success 200 {object} utils.SuccessResponse{data=models.NameChangeMaster} "更新后的记录"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 404 {object} utils.APIErrorResponse "记录未找到"
// @Router /name-changes/{id} [put]
// @Security BearerAuth
func (h *NameChangeHandler) UpdateNameChange(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload models.NameChangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	updated, err := h.service.UpdateNameChange(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, "更新名称变更记录失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updated, "名称变更记录更新成功")
}

// DeleteNameChange godoc
// @Summary 删除名称变更记录
// @Description 公司唯一的名称记录不能删除
// @Tags NameChanges
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 400 {object} utils.APIErrorResponse "不能删除最后一条记录"
// @Failure 404 {object} utils.APIErrorResponse "记录未找到"
// @Router /name-changes/{id} [delete]
// @Security BearerAuth
func (h *NameChangeHandler) DeleteNameChange(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteNameChange(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除名称变更记录失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "名称变更记录删除成功")
}
