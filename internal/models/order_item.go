package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a single line of an order, snapshotting the product
// at the moment of purchase.
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // primary key
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                           // owning order
	ProductID  uint           `gorm:"index;not null" json:"product_id"`                         // product at purchase time
	Name       string         `gorm:"type:varchar(200);not null" json:"name"`                   // product name snapshot
	Slug       string         `gorm:"type:varchar(200)" json:"slug,omitempty"`                  // product slug snapshot
	Image      string         `gorm:"type:varchar(500)" json:"image,omitempty"`                 // primary image snapshot
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // unit price snapshot
	Quantity   int            `gorm:"not null" json:"quantity"`                                 // units ordered
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // unit price times quantity
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // creation time
	UpdatedAt  time.Time      `json:"updated_at"`                                               // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // soft delete time
}

// TableName names the table.
func (OrderItem) TableName() string {
	return "order_items"
}
