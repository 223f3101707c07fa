package entity

import "time"

// Article 资讯文章，双语字段成对出现
type Article struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	Slug        string     `json:"slug" gorm:"size:128;not null;uniqueIndex"`
	TitleEN     string     `json:"title_en" gorm:"size:256;not null"`
	TitleVI     string     `json:"title_vi" gorm:"size:256;not null"`
	ExcerptEN   string     `json:"excerpt_en" gorm:"type:text"`
	ExcerptVI   string     `json:"excerpt_vi" gorm:"type:text"`
	BodyEN      string     `json:"body_en" gorm:"type:text"`
	BodyVI      string     `json:"body_vi" gorm:"type:text"`
	CoverURL    string     `json:"cover_url" gorm:"size:512"`
	AuthorID    string     `json:"author_id" gorm:"size:32"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (Article) TableName() string {
	return "articles"
}
