package entity

import "time"

// User 后台用户
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;size:32"`
	Username     string     `json:"username" gorm:"size:64;not null;uniqueIndex"`
	Name         string     `json:"name" gorm:"size:128;not null"`
	Email        string     `json:"email" gorm:"size:128;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:128;not null"`
	Role         string     `json:"role" gorm:"size:16;not null;default:editor"`
	Status       string     `json:"status" gorm:"size:16;not null;default:active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// UserRole 用户角色
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleSales  = "sales"
)

// UserStatus 用户状态
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Permission 权限为封闭集合，按角色查能力表，不做自由字符串匹配
type Permission string

const (
	PermClientsRead    Permission = "clients:read"
	PermClientsWrite   Permission = "clients:write"
	PermFinanceRead    Permission = "finance:read"
	PermFinanceWrite   Permission = "finance:write"
	PermCRMRead        Permission = "crm:read"
	PermCRMWrite       Permission = "crm:write"
	PermInquiriesRead  Permission = "inquiries:read"
	PermInquiriesWrite Permission = "inquiries:write"
	PermContentRead    Permission = "content:read"
	PermContentWrite   Permission = "content:write"
	PermUploadsWrite   Permission = "uploads:write"
	PermExportsRead    Permission = "exports:read"
	PermUsersManage    Permission = "users:manage"
)

// rolePermissions 角色→权限能力表
var rolePermissions = map[string][]Permission{
	RoleAdmin: {
		PermClientsRead, PermClientsWrite,
		PermFinanceRead, PermFinanceWrite,
		PermCRMRead, PermCRMWrite,
		PermInquiriesRead, PermInquiriesWrite,
		PermContentRead, PermContentWrite,
		PermUploadsWrite, PermExportsRead,
		PermUsersManage,
	},
	RoleEditor: {
		PermContentRead, PermContentWrite,
		PermUploadsWrite,
	},
	RoleSales: {
		PermClientsRead, PermClientsWrite,
		PermFinanceRead, PermFinanceWrite,
		PermCRMRead, PermCRMWrite,
		PermInquiriesRead, PermInquiriesWrite,
		PermExportsRead,
	},
}

// PermissionsForRole 返回角色的权限集合
func PermissionsForRole(role string) []Permission {
	return rolePermissions[role]
}

// PermissionStrings 返回角色的权限字符串列表，用于JWT claims
func PermissionStrings(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}
