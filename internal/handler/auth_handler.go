package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modernointeriors/modernointeriors-sub000/internal/config"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/modernointeriors/modernointeriors-sub000/internal/service"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *service.AuthService
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Login 用户登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, tokens, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			Unauthorized(c, "Invalid username or password")
			return
		}
		HandleError(c, err)
		return
	}

	Success(c, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh 刷新令牌
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.svc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		Unauthorized(c, "Invalid refresh token")
		return
	}
	Success(c, tokens)
}

// Logout 退出登录，当前访问令牌加入黑名单
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, _ := c.Get("token_jti")
	exp, _ := c.Get("token_exp")

	jtiStr, _ := jti.(string)
	expTime, _ := exp.(time.Time)
	if jtiStr == "" {
		Success(c, nil)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), jtiStr, expTime); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, nil)
}

// Me 获取当前登录用户信息
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.GetCurrentUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, user)
}
