package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/modernointeriors/modernointeriors-sub000/internal/config"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 认证服务。口令登录签发JWT对，
// refresh token与登出黑名单存Redis。
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("invalid username or password")

// TokenPair Token对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 口令登录
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if user.Status != entity.UserStatusActive {
		return nil, nil, fmt.Errorf("account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, nil, fmt.Errorf("touch last login: %w", err)
	}

	return user, pair, nil
}

// RefreshToken 刷新Token，旧refresh token一次性作废
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims["type"] != "refresh" {
		return nil, fmt.Errorf("invalid token type")
	}

	jti, _ := claims["jti"].(string)
	userID, err := s.rdb.Get(ctx, "token:refresh:"+jti).Result()
	if err != nil {
		return nil, fmt.Errorf("refresh token expired or invalid")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	s.rdb.Del(ctx, "token:refresh:"+jti)

	return s.generateTokenPair(user)
}

// Logout 登出，access token的jti进黑名单直至自然过期
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, "token:revoked:"+jti, "1", ttl).Err()
}

// GetCurrentUser 获取当前用户
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// generateTokenPair 生成Token对，权限按角色查能力表写入claims
func (s *AuthService) generateTokenPair(user *entity.User) (*TokenPair, error) {
	now := time.Now()
	jti := uuid.New().String()

	accessClaims := jwt.MapClaims{
		"sub":   user.ID,
		"uid":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"perms": entity.PermissionStrings(user.Role),
		"iss":   s.cfg.JWT.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWT.AccessTokenExpire).Unix(),
		"jti":   jti,
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJti := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  user.ID,
		"type": "refresh",
		"iss":  s.cfg.JWT.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWT.RefreshTokenExpire).Unix(),
		"jti":  refreshJti,
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if s.rdb != nil {
		ctx := context.Background()
		s.rdb.Set(ctx, "token:refresh:"+refreshJti, user.ID, s.cfg.JWT.RefreshTokenExpire)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenExpire.Seconds()),
	}, nil
}

// HashPassword 生成口令哈希
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
