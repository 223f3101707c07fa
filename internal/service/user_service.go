package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/modernointeriors/modernointeriors-sub000/internal/repository"
)

// UserService 后台用户管理服务
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService 创建用户管理服务
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleEditor, entity.RoleSales:
		return true
	}
	return false
}

// Create 创建后台用户
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "username is required"
	}
	if len(req.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	if req.Role == "" {
		req.Role = entity.RoleEditor
	}
	if !validRole(req.Role) {
		fields["role"] = "role must be one of: admin, editor, sales"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, newValidationError(map[string]string{"username": "username already exists"})
	}
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, newValidationError(map[string]string{"email": "email already exists"})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String()[:32],
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get 获取用户详情
func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List 用户列表
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// Update 更新用户
func (s *UserService) Update(ctx context.Context, id string, req *UpdateUserRequest) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, newValidationError(map[string]string{"password": "password must be at least 8 characters"})
		}
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return nil, newValidationError(map[string]string{"role": "role must be one of: admin, editor, sales"})
		}
		user.Role = *req.Role
	}
	if req.Status != nil {
		if *req.Status != entity.UserStatusActive && *req.Status != entity.UserStatusDisabled {
			return nil, newValidationError(map[string]string{"status": "status must be active or disabled"})
		}
		user.Status = *req.Status
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除用户
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
