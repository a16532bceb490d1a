package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial is a customer review shown on the storefront.
type Testimonial struct {
	ID        uint           `gorm:"primarykey" json:"id"`                   // primary key
	Author    string         `gorm:"type:varchar(200);not null" json:"author"` // reviewer name
	Location  string         `gorm:"type:varchar(200)" json:"location"`      // reviewer location
	Content   string         `gorm:"type:text;not null" json:"content"`      // review text
	Rating    int            `gorm:"not null;default:5" json:"rating"`       // 1 to 5
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`    // shown on the storefront
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`      // display position
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                // creation time
	UpdatedAt time.Time      `json:"updated_at"`                             // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // soft delete time
}

// TableName names the table.
func (Testimonial) TableName() string {
	return "testimonials"
}
