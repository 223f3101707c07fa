package entity

import "time"

// SiteContent 站点单页内容（首页、关于页），按key存储双语JSONB载荷
type SiteContent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Key       string    `json:"key" gorm:"size:32;not null;uniqueIndex"`
	PayloadEN JSONB     `json:"payload_en" gorm:"type:jsonb"`
	PayloadVI JSONB     `json:"payload_vi" gorm:"type:jsonb"`
	UpdatedBy string    `json:"updated_by" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteContent) TableName() string {
	return "site_contents"
}

// SiteContentKey 单页内容key
const (
	ContentKeyHomepage = "homepage"
	ContentKeyAbout    = "about"
)

// Partner 合作伙伴
type Partner struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:128;not null"`
	LogoURL   string    `json:"logo_url" gorm:"size:512"`
	Website   string    `json:"website" gorm:"size:256"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Partner) TableName() string {
	return "partners"
}

// FAQ 常见问题，双语
type FAQ struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	QuestionEN string    `json:"question_en" gorm:"type:text;not null"`
	QuestionVI string    `json:"question_vi" gorm:"type:text;not null"`
	AnswerEN   string    `json:"answer_en" gorm:"type:text"`
	AnswerVI   string    `json:"answer_vi" gorm:"type:text"`
	SortOrder  int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}
