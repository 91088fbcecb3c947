package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/services"
	"github.com/share_registry/pkg/utils"
)

// MaxUploadSize 是案件附件的大小上限
const MaxUploadSize = 5 << 20

// 允许上传的附件类型：扩展名 → MIME
var allowedUploadTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// CaseHandler 封装了案件相关的 HTTP 处理逻辑
type CaseHandler struct {
	service   services.CaseService
	documents services.DocumentService
}

// NewCaseHandler 创建一个新的 CaseHandler 实例
func NewCaseHandler(service services.CaseService, documents services.DocumentService) *CaseHandler {
	return &CaseHandler{service: service, documents: documents}
}

// CreateCase godoc
// @Summary 新建案件
// @Description 校验案件类型、三态标志与日期后保存。id 列表字段接受数组或 "3_5" 形式的字符串。
// @Tags Cases
// @Accept json
// @Produce json
// @Param case body models.CasePayload true "案件信息"
// @Success 201 {object} utils.SuccessResponse{data=models.Case} "创建成功的案件"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /cases [post]
// @Security BearerAuth
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload models.CasePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	created, err := h.service.CreateCase(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "创建案件失败")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, created, "案件创建成功")
}

// GetCases godoc
// @Summary 获取案件列表
// @Description 分页查询案件，search 匹配案件类型、folio 与死亡地点
// @Tags Cases
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param sortBy query string false "排序字段 (id, caseType, createdAt, updatedAt)"
// @Param sortOrder query string false "排序顺序 ('asc'或'desc')" default("desc")
// @Param search query string false "搜索关键词"
// @Param caseType query string false "案件类型筛选"
// @Success 200 {object} utils.SuccessResponse{data=utils.PagedData{items=[]models.Case}} "案件列表与分页信息"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /cases [get]
// @Security BearerAuth
func (h *CaseHandler) GetCases(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	cases, total, err := h.service.ListCases(c.Request.Context(), q, c.Query("caseType"))
	if err != nil {
		respondServiceError(c, err, "获取案件列表失败")
		return
	}
	respondPage(c, cases, total, q, "案件列表获取成功")
}

// GetCaseByID godoc
// @Summary 获取案件
// @Tags Cases
// @Produce json
// @Param id path int true "案件 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.Case} "案件详情"
// @Failure 400 {object} utils.APIErrorResponse "无效的 ID"
// @Failure 404 {object} utils.APIErrorResponse "案件未找到"
// @Router /cases/{id} [get]
// @Security BearerAuth
func (h *CaseHandler) GetCaseByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	found, err := h.service.GetCase(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取案件失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, found, "案件获取成功")
}

// GetCaseView godoc
// @Summary 获取案件的关联视图
// @Description 把案件中的 folio、申请人、提名、转位顺序与宣誓人 id 列表解析为关联记录
// @Tags Cases
// @Produce json
// @Param id path int true "案件 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.EnrichedCase} "案件视图"
// @Failure 400 {object} utils.APIErrorResponse "无效的 ID"
// @Failure 404 {object} utils.APIErrorResponse "案件未找到"
// @Router /cases/{id}/view [get]
// @Security BearerAuth
func (h *CaseHandler) GetCaseView(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	view, err := h.service.ResolveCaseView(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取案件视图失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, view, "案件视图获取成功")
}

// UpdateCase godoc
// @Summary 更新案件
// @Description 以请求体整体替换案件的可编辑字段，附件不受影响
// @Tags Cases
// @Accept json
// @Produce json
// @Param id path int true "案件 ID"
// @Param case body models.CasePayload true "案件信息"
// @Success 200 {object} utils.SuccessResponse{data=models.Case} "更新后的案件"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 404 {object} utils.APIErrorResponse "案件未找到"
// @Router /cases/{id} [put]
// @Security BearerAuth
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload models.CasePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	updated, err := h.service.UpdateCase(c.Request.Context(), id, payload)
	if err != nil {
		respondServiceError(c, err, "更新案件失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updated, "案件更新成功")
}

// DeleteCase godoc
// @Summary 删除案件
// @Tags Cases
// @Produce json
// @Param id path int true "案件 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 404 {object} utils.APIErrorResponse "案件未找到"
// @Router /cases/{id} [delete]
// @Security BearerAuth
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCase(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "删除案件失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "案件删除成功")
}

// UploadDocument godoc
// @Summary 上传案件附件
// @Description 附件不超过 5MB，支持 pdf / jpg / png。重新上传会删除旧附件。
// @Tags Cases
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "案件 ID"
// @Param file formData file true "附件"
// @Success 200 {object} utils.SuccessResponse{data=models.Case} "更新后的案件"
// @Failure 400 {object} utils.APIErrorResponse "缺少文件、文件过大或类型不支持"
// @Failure 404 {object} utils.APIErrorResponse "案件未找到"
// @Router /cases/{id}/document [post]
// @Security BearerAuth
func (h *CaseHandler) UploadDocument(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondBadRequest(c, "请上传文件 (字段名 file)")
		return
	}
	if fileHeader.Size > MaxUploadSize {
		utils.RespondBadRequest(c, fmt.Sprintf("文件大小不能超过 %dMB", MaxUploadSize>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondInternalServerError(c, "读取上传文件失败", err.Error())
		return
	}
	defer file.Close()

	if err := checkUploadType(fileHeader.Filename, file); err != nil {
		utils.RespondBadRequest(c, err.Error())
		return
	}

	updated, err := h.service.AttachDocument(c.Request.Context(), id, fileHeader.Filename, io.LimitReader(file, MaxUploadSize))
	if err != nil {
		respondServiceError(c, err, "保存附件失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updated, "附件上传成功")
}

// checkUploadType 同时校验扩展名与内容嗅探出的 MIME，校验后把读取位置复位
func checkUploadType(filename string, file multipart.File) error {
	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := allowedUploadTypes[ext]
	if !ok {
		return fmt.Errorf("不支持的文件类型 %q", ext)
	}
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("无法识别文件类型: %w", err)
	}
	if !detected.Is(want) {
		return fmt.Errorf("文件内容 (%s) 与扩展名 %s 不符", detected.String(), ext)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("读取上传文件失败: %w", err)
	}
	return nil
}

// DownloadBundle godoc
// @Summary 生成并下载案件文档包
// @Description 按案件类型生成每个 folio 的全部文档并打包为 zip
// @Tags Cases
// @Produce application/zip
// @Param id path int true "案件 ID"
// @Success 200 {file} file "文档包"
// @Failure 400 {object} utils.APIErrorResponse "案件类型无效"
// @Failure 404 {object} utils.APIErrorResponse "案件或关联记录未找到"
// @Failure 500 {object} utils.APIErrorResponse "文档生成失败"
// @Router /cases/{id}/bundle [get]
// @Security BearerAuth
func (h *CaseHandler) DownloadBundle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	zipPath, err := h.documents.GenerateDocumentBundle(context.WithoutCancel(c.Request.Context()), id)
	if err != nil {
		respondServiceError(c, err, "生成文档包失败")
		return
	}
	c.FileAttachment(zipPath, filepath.Base(zipPath))
}
