package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryImage is a nursery gallery entry.
type GalleryImage struct {
	ID         uint           `gorm:"primarykey" json:"id"`                        // primary key
	ImageURL   string         `gorm:"type:varchar(500);not null" json:"image_url"` // gallery image
	Title      string         `gorm:"type:varchar(200)" json:"title"`              // caption
	Tags       StringArray    `gorm:"type:json" json:"tags"`                       // filter tags
	IsFeatured bool           `gorm:"default:false;index" json:"is_featured"`      // highlighted on the homepage
	SortOrder  int            `gorm:"default:0;index" json:"sort_order"`           // display position
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                     // creation time
	UpdatedAt  time.Time      `json:"updated_at"`                                  // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                              // soft delete time
}

// TableName names the table.
func (GalleryImage) TableName() string {
	return "gallery_images"
}
