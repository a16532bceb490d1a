package public

import (
	"net/http"
	"strings"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one checkout line.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	IdempotencyKey  string             `json:"idempotency_key"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	ShippingCity    string             `json:"shipping_city" binding:"required"`
	ShippingState   string             `json:"shipping_state"`
	ShippingZip     string             `json:"shipping_zip" binding:"required"`
	ShippingCountry string             `json:"shipping_country" binding:"required"`
	PaymentMethod   string             `json:"payment_method"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	Notes           string             `json:"notes"`
}

// CreateOrder materializes a checkout into a persistent order. The
// idempotency key may arrive in the header or the body; the header wins.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order request", err)
		return
	}

	idempotencyKey := strings.TrimSpace(c.GetHeader(constants.HeaderIdempotencyKey))
	if idempotencyKey == "" {
		idempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.OrderService.Create(service.CreateOrderInput{
		IdempotencyKey:  idempotencyKey,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		ShippingCountry: req.ShippingCountry,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     req.TotalAmount,
		Items:           items,
		Notes:           req.Notes,
		ClientIP:        c.ClientIP(),
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Created(c, order)
}

// GetOrder resolves an order by its public reference. Lookup is
// case-insensitive and tolerates surrounding whitespace.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByReference(c.Param("reference"))
	if err != nil {
		respondOrderLookupError(c, err)
		return
	}
	response.Success(c, order)
}
