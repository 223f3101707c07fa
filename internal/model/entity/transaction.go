package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 客户财务流水
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;size:32"`
	ClientID    string          `json:"client_id" gorm:"size:32;not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Type        string          `json:"type" gorm:"size:16;not null;default:payment"`
	Status      string          `json:"status" gorm:"size:16;not null;default:pending"`
	Title       string          `json:"title" gorm:"size:256;not null"`
	Description string          `json:"description" gorm:"type:text"`
	PaymentDate Date            `json:"payment_date" gorm:"not null"`
	Notes       string          `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// 关联
	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionType 流水类型
const (
	TransactionTypePayment    = "payment"
	TransactionTypeRefund     = "refund"
	TransactionTypeCommission = "commission"
)

// TransactionStatus 流水状态，仅completed参与客户财务汇总
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// ValidTransactionType 检查流水类型是否合法
func ValidTransactionType(s string) bool {
	switch s {
	case TransactionTypePayment, TransactionTypeRefund, TransactionTypeCommission:
		return true
	}
	return false
}

// ValidTransactionStatus 检查流水状态是否合法
func ValidTransactionStatus(s string) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}
