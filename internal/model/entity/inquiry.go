package entity

import "time"

// Inquiry 官网联系表单提交
type Inquiry struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:128;not null"`
	Email     string    `json:"email" gorm:"size:128;not null"`
	Phone     string    `json:"phone" gorm:"size:32"`
	Subject   string    `json:"subject" gorm:"size:256"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Locale    string    `json:"locale" gorm:"size:8;not null;default:en"`
	Status    string    `json:"status" gorm:"size:16;not null;default:new"`
	ClientID  *string   `json:"client_id" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

// InquiryStatus 询单状态
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)
