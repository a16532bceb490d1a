package models

import (
	"time"

	"gorm.io/gorm"
)

// SocialLink is a social media profile shown in the site footer.
type SocialLink struct {
	ID         uint           `gorm:"primarykey" json:"id"`                        // primary key
	Platform   string         `gorm:"type:varchar(60);not null" json:"platform"`   // platform name
	URL        string         `gorm:"type:varchar(500);not null" json:"url"`       // profile URL
	Icon       string         `gorm:"type:varchar(120)" json:"icon"`               // named icon key
	SVGContent string         `gorm:"type:text" json:"svg_content,omitempty"`      // inline SVG override
	IsActive   bool           `gorm:"default:true;index" json:"is_active"`         // shown on the storefront
	SortOrder  int            `gorm:"default:0;index" json:"sort_order"`           // display position
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                     // creation time
	UpdatedAt  time.Time      `json:"updated_at"`                                  // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                              // soft delete time
}

// TableName names the table.
func (SocialLink) TableName() string {
	return "social_links"
}
