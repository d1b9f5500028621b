package models

import (
	"time"

	"gorm.io/gorm"
)

// CMS page statuses.
const (
	PageDraft     = "draft"
	PagePublished = "published"
)

// CmsPage is a managed content page.
type CmsPage struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Slug            string         `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Content         string         `gorm:"type:text" json:"content"`
	PageType        string         `gorm:"type:varchar(40);index" json:"page_type"`
	Status          string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Author          string         `gorm:"type:varchar(120)" json:"author"`
	LastModifiedBy  string         `gorm:"type:varchar(120)" json:"last_modified_by"`
	MetaDescription string         `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string         `gorm:"type:text" json:"meta_keywords"`
	FeaturedImage   string         `gorm:"type:text" json:"featured_image"`
	IsFeatured      bool           `gorm:"not null;default:false" json:"is_featured"`
	ViewCount       int            `gorm:"not null;default:0" json:"view_count"`
	PublishDate     *time.Time     `json:"publish_date"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CmsPage) TableName() string {
	return "cms_pages"
}
