package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/share_registry/internal/auth"
	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
)

// LoginResult 是登录成功后返回的 Token 与用户信息
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// AuthService 定义了后台登录 / 登出服务的接口
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	users    repositories.UserRepository
	denylist auth.Denylist
	secret   string
}

// NewAuthService 创建一个新的 authService 实例
func NewAuthService(users repositories.UserRepository, denylist auth.Denylist, secret string) AuthService {
	return &authService{users: users, denylist: denylist, secret: secret}
}

// Login 用户不存在与密码错误返回同一个错误
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := auth.IssueToken(s.secret, user.ID, user.Username, user.Role, uuid.NewString(), time.Now())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.denylist.Add(ctx, jti, expiresAt)
}

// HashPassword 生成 bcrypt 哈希，用于初始化后台用户
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
