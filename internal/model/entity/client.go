package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client 客户实体
type Client struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	FirstName string `json:"first_name" gorm:"size:64;not null"`
	LastName  string `json:"last_name" gorm:"size:64;not null"`
	Email     string `json:"email" gorm:"size:128;not null;uniqueIndex"`
	Phone     string `json:"phone" gorm:"size:32"`
	Company   string `json:"company" gorm:"size:128"`
	Address   string `json:"address" gorm:"size:256"`

	// CRM分类
	Stage  string `json:"stage" gorm:"size:16;not null;default:lead"`
	Status string `json:"status" gorm:"size:16;not null;default:active"`
	Tier   string `json:"tier" gorm:"size:16;not null;default:silver"`

	// 派生财务字段，仅由财务重算引擎写入
	TotalSpending   decimal.Decimal `json:"total_spending" gorm:"type:decimal(14,2);not null;default:0"`
	RefundAmount    decimal.Decimal `json:"refund_amount" gorm:"type:decimal(14,2);not null;default:0"`
	Commission      decimal.Decimal `json:"commission" gorm:"type:decimal(14,2);not null;default:0"`
	OrderCount      int             `json:"order_count" gorm:"not null;default:0"`
	ReferralRevenue decimal.Decimal `json:"referral_revenue" gorm:"type:decimal(14,2);not null;default:0"`
	ReferralCount   int             `json:"referral_count" gorm:"not null;default:0"`

	// 推荐关系
	ReferredByID *string `json:"referred_by_id" gorm:"size:32"`

	// 质保
	WarrantyStatus string `json:"warranty_status" gorm:"size:16;not null;default:none"`
	WarrantyExpiry *Date  `json:"warranty_expiry"`

	Tags  StringArray `json:"tags" gorm:"type:jsonb"`
	Notes string      `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	ReferredBy   *Client       `json:"referred_by,omitempty" gorm:"foreignKey:ReferredByID"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string {
	return "clients"
}

// ClientStage 客户阶段
const (
	ClientStageLead      = "lead"
	ClientStageProspect  = "prospect"
	ClientStageContract  = "contract"
	ClientStageDelivery  = "delivery"
	ClientStageAftercare = "aftercare"
)

// ClientStatus 客户状态
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusArchived = "archived"
)

// ClientTier 客户等级
const (
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
	TierVIP      = "vip"
)

// WarrantyStatus 质保状态
const (
	WarrantyNone    = "none"
	WarrantyActive  = "active"
	WarrantyExpired = "expired"
)

// ValidClientStage 检查客户阶段是否合法
func ValidClientStage(s string) bool {
	switch s {
	case ClientStageLead, ClientStageProspect, ClientStageContract, ClientStageDelivery, ClientStageAftercare:
		return true
	}
	return false
}

// ValidClientStatus 检查客户状态是否合法
func ValidClientStatus(s string) bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusArchived:
		return true
	}
	return false
}
