package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/services"
	"github.com/share_registry/pkg/utils"
)

// CompanyHandler 封装了公司主数据的 HTTP 处理逻辑
type CompanyHandler struct {
	service services.CompanyService
}

// NewCompanyHandler 创建一个新的 CompanyHandler 实例
func NewCompanyHandler(service services.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany godoc
// @Summary 新增公司
// @Description companyName 与 ticker 作为第一条名称记录保存，dateOfNameChange 缺省为当天
// @Tags Companies
// @Accept json
// @Produce json
// @Param company body models.CompanyPayload true "公司信息"
// @Success 201 {object} utils.SuccessResponse{data=models.CompanyResponse} "创建成功的公司"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 404 {object} utils.APIErrorResponse "RTA 分支机构未找到"
// @Failure 409 {object} utils.APIErrorResponse "公司已存在"
// @Router /companies [post]
// @Security BearerAuth
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var payload models.CompanyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	created, err := h.service.CreateCompany(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "创建公司失败")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, created, "公司创建成功")
}

// GetCompanies godoc
// @Summary 获取公司列表
// @Tags Companies
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param sortBy query string false "排序字段 (id, isin, createdAt)"
// @Param sortOrder query string false "排序顺序 ('asc'或'desc')" default("desc")
// @Param search query string false "搜索关键词 (匹配名称、ISIN、CIN)"
// @Success 200 {object} utils.SuccessResponse{data=utils.PagedData{items=[]models.CompanyResponse}} "公司列表与分页信息"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Router /companies [get]
// @Security BearerAuth
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	companies, total, err := h.service.ListCompanies(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err, "获取公司列表失败")
		return
	}
	respondPage(c, companies, total, q, "公司列表获取成功")
}

// GetCompanyByID godoc
// @Summary 获取公司
// @Tags Companies
// @Produce json
// @Param id path int true "公司 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.CompanyResponse} "公司详情"
// @Failure 404 {object} utils.APIErrorResponse "公司未找到"
// @Router /companies/{id} [get]
// @Security BearerAuth
func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	company, err := h.service.GetCompany(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取公司失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, company, "公司获取成功")
}

// UpdateCompany godoc
// @Summary 更新公司
// @Description 只更新请求中出现的字段；名称变更请使用 /name-changes
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path int true "公司 ID"
// @Param company body models.UpdateCompanyPayload true "需要更新的字段"
// @Success 200 {object} utils.SuccessResponse{data=models.CompanyResponse} "更新后的公司"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 404 {object} utils.APIErrorResponse "公司或 RTA 分支机构未找到"
// @Router /companies/{id} [put]
// @Security BearerAuth
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload models.UpdateCompanyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	updated, err := h.service.UpdateCompany(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, "更新公司失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updated, "公司更新成功")
}

// DeleteCompany godoc
// @Summary 删除公司及其名称历史
// @Tags Companies
// @Produce json
// @Param id path int true "公司 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 404 {object} utils.APIErrorResponse "公司未找到"
// @Router /companies/{id} [delete]
// @Security BearerAuth
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCompany(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除公司失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "公司删除成功")
}
