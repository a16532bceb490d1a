package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed order.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                         // primary key
	Reference       string         `gorm:"uniqueIndex;not null;type:varchar(20)" json:"reference"`       // public lookup reference, uppercase
	IdempotencyKey  *string        `gorm:"uniqueIndex;type:varchar(80)" json:"-"`                        // creation dedup key, NULL when absent
	Status          string         `gorm:"index;not null" json:"status"`                                 // pending/confirmed/shipped/delivered/cancelled
	CustomerName    string         `gorm:"type:varchar(200);not null" json:"customer_name"`              // customer full name
	CustomerEmail   string         `gorm:"type:varchar(200);not null;index" json:"customer_email"`       // customer email
	CustomerPhone   string         `gorm:"type:varchar(40)" json:"customer_phone,omitempty"`             // customer phone
	ShippingAddress string         `gorm:"type:varchar(300);not null" json:"shipping_address"`           // street address
	ShippingCity    string         `gorm:"type:varchar(120);not null" json:"shipping_city"`              // city
	ShippingState   string         `gorm:"type:varchar(120)" json:"shipping_state,omitempty"`            // state or province
	ShippingZip     string         `gorm:"type:varchar(40);not null" json:"shipping_zip_code"`           // postal code
	ShippingCountry string         `gorm:"type:varchar(120);not null" json:"shipping_country"`           // country
	PaymentMethod   string         `gorm:"type:varchar(40)" json:"payment_method,omitempty"`             // preferred payment method
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`        // sum of line totals
	ShippingAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_amount"` // shipping charge
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`    // subtotal plus shipping
	ItemCount       int            `gorm:"not null;default:0" json:"item_count"`                         // total quantity across items
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`                             // customer notes
	ClientIP        string         `gorm:"type:varchar(64)" json:"-"`                                    // creating client IP
	ConfirmedAt     *time.Time     `gorm:"index" json:"confirmed_at,omitempty"`                          // confirmation time
	ShippedAt       *time.Time     `gorm:"index" json:"shipped_at,omitempty"`                            // shipment time
	CancelledAt     *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`                          // cancellation time
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                      // creation time
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                      // update time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                               // soft delete time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // order lines
}

// TableName names the table.
func (Order) TableName() string {
	return "orders"
}
