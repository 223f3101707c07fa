package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal 商机
type Deal struct {
	ID                string          `json:"id" gorm:"primaryKey;size:32"`
	ClientID          string          `json:"client_id" gorm:"size:32;not null;index"`
	Title             string          `json:"title" gorm:"size:256;not null"`
	Stage             string          `json:"stage" gorm:"size:24;not null;default:lead"`
	Value             decimal.Decimal `json:"value" gorm:"type:decimal(14,2);not null;default:0"`
	ExpectedCloseDate *Date           `json:"expected_close_date"`
	Notes             string          `json:"notes" gorm:"type:text"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (Deal) TableName() string {
	return "deals"
}

// DealStage 商机阶段
const (
	DealStageLead        = "lead"
	DealStageConsulting  = "consulting"
	DealStageQuoting     = "quoting"
	DealStageNegotiation = "negotiation"
	DealStageClosedWon   = "closed_won"
	DealStageClosedLost  = "closed_lost"
)

// ValidDealStage 检查商机阶段是否合法
func ValidDealStage(s string) bool {
	switch s {
	case DealStageLead, DealStageConsulting, DealStageQuoting,
		DealStageNegotiation, DealStageClosedWon, DealStageClosedLost:
		return true
	}
	return false
}

// Interaction 客户互动记录
type Interaction struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	ClientID   string    `json:"client_id" gorm:"size:32;not null;index"`
	Type       string    `json:"type" gorm:"size:16;not null;default:other"`
	OccurredAt time.Time `json:"occurred_at" gorm:"not null"`
	Summary    string    `json:"summary" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// InteractionType 互动类型
const (
	InteractionTypeCall      = "call"
	InteractionTypeEmail     = "email"
	InteractionTypeMeeting   = "meeting"
	InteractionTypeSiteVisit = "site_visit"
	InteractionTypeOther     = "other"
)

// ValidInteractionType 检查互动类型是否合法
func ValidInteractionType(s string) bool {
	switch s {
	case InteractionTypeCall, InteractionTypeEmail, InteractionTypeMeeting,
		InteractionTypeSiteVisit, InteractionTypeOther:
		return true
	}
	return false
}
