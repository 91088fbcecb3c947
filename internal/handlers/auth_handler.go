package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/share_registry/internal/services"
	"github.com/share_registry/pkg/utils"
)

// AuthHandler 封装了后台登录 / 登出
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login godoc
// @Summary 管理员登录
// @Description 验证管理员凭证并返回 JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "登录成功，返回 Token 和用户信息"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "无效的用户名或密码"
// @Failure 500 {object} utils.APIErrorResponse "无法生成Token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "登录失败")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User: UserInfo{
			ID:       result.User.ID,
			Username: result.User.Username,
			Role:     result.User.Role,
		},
	}, "登录成功")
}

// Logout godoc
// @Summary 登出
// @Description 将当前 Token 的 JTI 加入拒绝列表直到其过期
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "成功登出"
// @Failure 400 {object} utils.APIErrorResponse "上下文中缺少 JTI 或 EXP"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	expVal, expExists := c.Get("exp")
	exp, okEXP := expVal.(time.Time)

	if jti == "" {
		utils.RespondBadRequest(c, "Logout context error: Invalid JTI")
		return
	}
	if !expExists || !okEXP {
		utils.RespondBadRequest(c, "Logout context error: Invalid EXP")
		return
	}

	if err := h.service.Logout(c.Request.Context(), jti, exp); err != nil {
		respondServiceError(c, err, "登出失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "成功登出")
}
