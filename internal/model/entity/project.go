package entity

import "time"

// Project 作品集项目，双语字段成对出现
type Project struct {
	ID            string      `json:"id" gorm:"primaryKey;size:32"`
	Slug          string      `json:"slug" gorm:"size:128;not null;uniqueIndex"`
	TitleEN       string      `json:"title_en" gorm:"size:256;not null"`
	TitleVI       string      `json:"title_vi" gorm:"size:256;not null"`
	DescriptionEN string      `json:"description_en" gorm:"type:text"`
	DescriptionVI string      `json:"description_vi" gorm:"type:text"`
	Category      string      `json:"category" gorm:"size:64"`
	Location      string      `json:"location" gorm:"size:128"`
	Area          string      `json:"area" gorm:"size:32"`
	Year          int         `json:"year"`
	CoverURL      string      `json:"cover_url" gorm:"size:512"`
	Gallery       StringArray `json:"gallery" gorm:"type:jsonb"`
	Published     bool        `json:"published" gorm:"not null;default:false"`
	SortOrder     int         `json:"sort_order" gorm:"not null;default:0"`
	ClientID      *string     `json:"client_id" gorm:"size:32"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	DeletedAt     *time.Time  `json:"deleted_at,omitempty" gorm:"index"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (Project) TableName() string {
	return "projects"
}
