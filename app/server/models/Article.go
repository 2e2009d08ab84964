package models

import (
	"github.com/lib/pq"
	"time"
)

type Article struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	// 内容
	Title      string         `gorm:"column:title" json:"title"`
	Excerpt    string         `gorm:"column:excerpt" json:"excerpt"`
	Content    string         `gorm:"column:content" json:"content"`
	CoverImage string         `gorm:"column:cover_image" json:"cover_image"` // 本地上传时为 /uploads/ 开头的路径，否则为外部 URL
	Author     string         `gorm:"column:author" json:"author"`
	Tags       pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"` // 有序
	IsFeatured bool           `gorm:"column:is_featured" json:"is_featured"`

	// 时间
	PublicationDate time.Time  `gorm:"column:publication_date;index" json:"publication_date"`
	UpdatedAt       *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"` // 仅在更新时写入
}

func (Article) TableName() string {
	return "articles"
}
