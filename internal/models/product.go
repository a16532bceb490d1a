package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a doll listing.
type Product struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                                            // primary key
	Slug                string         `gorm:"uniqueIndex;not null" json:"slug"`                                // URL identifier
	Name                string         `gorm:"type:varchar(200);not null" json:"name"`                          // display name
	PriceAmount         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`              // listed price
	Description         string         `gorm:"type:text" json:"description"`                                    // short description
	DetailedDescription string         `gorm:"type:text" json:"detailed_description"`                           // long form description
	MaterialsAndCare    string         `gorm:"type:text" json:"materials_and_care"`                             // materials and care notes
	ShippingInfo        string         `gorm:"type:text" json:"shipping_info"`                                  // shipping notes
	Images              StringArray    `gorm:"type:json" json:"images"`                                         // image URLs
	Status              string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`   // draft/available/reserved/sold
	SortOrder           int            `gorm:"default:0;index" json:"sort_order"`                               // sort weight
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`                                         // creation time
	UpdatedAt           time.Time      `json:"updated_at"`                                                      // update time
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                                  // soft delete time
}

// TableName names the table.
func (Product) TableName() string {
	return "products"
}
