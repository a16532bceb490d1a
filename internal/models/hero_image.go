package models

import (
	"time"

	"gorm.io/gorm"
)

// HeroImage is a homepage hero slide.
type HeroImage struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // primary key
	Title     string         `gorm:"type:varchar(200)" json:"title"`          // headline
	Subtitle  string         `gorm:"type:varchar(400)" json:"subtitle"`       // supporting line
	ImageURL  string         `gorm:"type:varchar(500);not null" json:"image_url"` // slide image
	Link      string         `gorm:"type:varchar(500)" json:"link"`           // click-through target
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`       // slide position
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`     // shown on the storefront
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                 // creation time
	UpdatedAt time.Time      `json:"updated_at"`                              // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete time
}

// TableName names the table.
func (HeroImage) TableName() string {
	return "hero_images"
}
