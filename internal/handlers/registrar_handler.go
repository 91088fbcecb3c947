package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/services"
	"github.com/share_registry/pkg/utils"
)

// RegistrarHandler 封装了 RTA 及其分支机构的 HTTP 处理逻辑
type RegistrarHandler struct {
	registrars services.RegistrarService
	branches   services.RegistrarBranchService
}

// NewRegistrarHandler 创建一个新的 RegistrarHandler 实例
func NewRegistrarHandler(registrars services.RegistrarService, branches services.RegistrarBranchService) *RegistrarHandler {
	return &RegistrarHandler{registrars: registrars, branches: branches}
}

// CreateRegistrar godoc
// @Summary 新增 RTA
// @Tags Registrars
// @Accept json
// @Produce json
// @Param registrar body models.RegistrarPayload true "RTA 信息"
// @Success 201 {object} utils.SuccessResponse{data=models.RegistrarMaster} "创建成功的 RTA"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 409 {object} utils.APIErrorResponse "RTA 已存在"
// @Router /registrars [post]
// @Security BearerAuth
func (h *RegistrarHandler) CreateRegistrar(c *gin.Context) {
	var payload models.RegistrarPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	created, err := h.registrars.CreateRegistrar(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "创建 RTA 失败")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, created, "RTA 创建成功")
}

// GetRegistrars godoc
// @Summary 获取 RTA 列表
// @Tags Registrars
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param sortBy query string false "排序字段 (id, registrarName, createdAt)"
// @Param sortOrder query string false "排序顺序 ('asc'或'desc')" default("desc")
// @Param search query string false "搜索关键词 (匹配名称、SEBI 注册号)"
// @Success 200 {object} utils.SuccessResponse{data=utils.PagedData{items=[]models.RegistrarMaster}} "RTA 列表与分页信息"
// @Router /registrars [get]
// @Security BearerAuth
func (h *RegistrarHandler) GetRegistrars(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	rows, total, err := h.registrars.ListRegistrars(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err, "获取 RTA 列表失败")
		return
	}
	respondPage(c, rows, total, q, "RTA 列表获取成功")
}

// GetRegistrarByID godoc
// @Summary 获取 RTA
// @Tags Registrars
// @Produce json
// @Param id path int true "RTA ID"
// @Success 200 {object} utils.SuccessResponse{data=models.RegistrarMaster} "RTA 详情"
// @Failure 404 {object} utils.APIErrorResponse "RTA 未找到"
// @Router /registrars/{id} [get]
// @Security BearerAuth
func (h *RegistrarHandler) GetRegistrarByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	r, err := h.registrars.GetRegistrar(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取 RTA 失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, r, "RTA 获取成功")
}

// UpdateRegistrar godoc
// @Summary 更新 RTA
// @Tags Registrars
// @Accept json
// @Produce json
// @Param id path int true "RTA ID"
// @Param registrar body models.RegistrarPayload true "RTA 信息"
// @Success 200 {object} utils.SuccessResponse{data=models.RegistrarMaster} "更新后的 RTA"
// @Failure 404 {object} utils.APIErrorResponse "RTA 未找到"
// @Router /registrars/{id} [put]
// @Security BearerAuth
func (h *RegistrarHandler) UpdateRegistrar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload models.RegistrarPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	updated, err := h.registrars.UpdateRegistrar(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, "更新 RTA 失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updated, "RTA 更新成功")
}

// DeleteRegistrar godoc
// @Summary 删除 RTA
// @Description 仍有分支机构的 RTA 不能删除
// @Tags Registrars
// @Produce json
// @Param id path int true "RTA ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 404 {object} utils.APIErrorResponse "RTA 未找到"
// @Failure 409 {object} utils.APIErrorResponse "RTA 仍有关联的分支机构"
// @Router /registrars/{id} [delete]
// @Security BearerAuth
func (h *RegistrarHandler) DeleteRegistrar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.registrars.DeleteRegistrar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除 RTA 失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "RTA 删除成功")
}

// CreateBranch godoc
// @Summary 新增 RTA 分支机构
// @Tags RegistrarBranches
// @Accept json
// @Produce json
// @Param branch body models.RegistrarBranchPayload true "分支机构信息"
// @Success 201 {object} utils.SuccessResponse{data=models.RegistrarMasterBranch} "创建成功的分支机构"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 404 {object} utils.APIErrorResponse "RTA 未找到"
// @Router /registrar-branches [post]
// @Security BearerAuth
func (h *RegistrarHandler) CreateBranch(c *gin.Context) {
	var payload models.RegistrarBranchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	created, err := h.branches.CreateBranch(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "创建 RTA 分支机构失败")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, created, "RTA 分支机构创建成功")
}

// GetBranches godoc
// @Summary 获取 RTA 分支机构列表
// @Tags RegistrarBranches
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param sortBy query string false "排序字段 (id, branchName, city, createdAt)"
// @Param sortOrder query string false "排序顺序 ('asc'或'desc')" default("desc")
// @Param search query string false "搜索关键词 (匹配名称、城市)"
// @Param registrarId query int false "按 RTA 筛选"
// @Success 200 {object} utils.SuccessResponse{data=utils.PagedData{items=[]models.RegistrarMasterBranch}} "分支机构列表与分页信息"
// @Router /registrar-branches [get]
// @Security BearerAuth
func (h *RegistrarHandler) GetBranches(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	registrarID, ok := optionalInt64Query(c, "registrarId")
	if !ok {
		return
	}
	rows, total, err := h.branches.ListBranches(c.Request.Context(), q, registrarID)
	if err != nil {
		respondServiceError(c, err, "获取 RTA 分支机构列表失败")
		return
	}
	respondPage(c, rows, total, q, "RTA 分支机构列表获取成功")
}

// GetBranchByID godoc
// @Summary 获取 RTA 分支机构
// @Tags RegistrarBranches
// @Produce json
// @Param id path int true "分支机构 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.RegistrarMasterBranch} "分支机构详情"
// @Failure 404 {object} utils.APIErrorResponse "分支机构未找到"
// @Router /registrar-branches/{id} [get]
// @Security BearerAuth
func (h *RegistrarHandler) GetBranchByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	b, err := h.branches.GetBranch(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取 RTA 分支机构失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, b, "RTA 分支机构获取成功")
}

// UpdateBranch godoc
// @Summary 更新 RTA 分支机构
// @Tags RegistrarBranches
// @Accept json
// @Produce json
// @Param id path int true "分支机构 ID"
// @Param branch body models.RegistrarBranchPayload true "分支机构信息"
// @Success 200 {object} utils.SuccessResponse{data=models.RegistrarMasterBranch} "更新后的分支机构"
// @Failure 404 {object} utils.APIErrorResponse "分支机构或 RTA 未找到"
// @Router /registrar-branches/{id} [put]
// @Security BearerAuth
func (h *RegistrarHandler) UpdateBranch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload models.RegistrarBranchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	updated, err := h.branches.UpdateBranch(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, "更新 RTA 分支机构失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updated, "RTA 分支机构更新成功")
}

// DeleteBranch godoc
// @Summary 删除 RTA 分支机构
// @Description 仍被公司引用的分支机构不能删除
// @Tags RegistrarBranches
// @Produce json
// @Param id path int true "分支机构 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 404 {object} utils.APIErrorResponse "分支机构未找到"
// @Failure 409 {object} utils.APIErrorResponse "分支机构仍被公司引用"
// @Router /registrar-branches/{id} [delete]
// @Security BearerAuth
func (h *RegistrarHandler) DeleteBranch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.branches.DeleteBranch(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除 RTA 分支机构失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "RTA 分支机构删除成功")
}
