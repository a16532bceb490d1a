package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one product line inside a cart.
type Item struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug,omitempty"`
	Image     string          `json:"image,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart is the per-session shopping cart state.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns an empty cart bound to a session.
func New(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []Item{},
		UpdatedAt: time.Now(),
	}
}

// AddItem merges the item into the cart. An existing line for the same
// product accumulates quantity; the incoming snapshot fields win so stale
// names and prices refresh on re-add. A non-positive resulting quantity
// removes the line.
func (c *Cart) AddItem(item Item) {
	if item.Quantity <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			quantity := c.Items[i].Quantity + item.Quantity
			c.Items[i] = item
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.touch()
}

// UpdateQuantity sets the quantity of a product line. A quantity of zero
// or less removes it. Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// RemoveItem drops the line for a product, if present.
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.touch()
}

// Total accumulates price*quantity across lines without intermediate
// rounding; presentation layers round for display.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount is the total unit count across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
