package admin

import (
	"net/http"
	"time"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/gin-gonic/gin"
)

// OrderStatusRequest advances an order through its lifecycle.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetOrders lists orders for the back office.
func (h *Handler) GetOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.OrderListFilter{
		Status:        c.Query("status"),
		Reference:     c.Query("reference"),
		CustomerEmail: c.Query("customer_email"),
		Page:          page,
		PageSize:      pageSize,
	}
	if from := c.Query("created_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if to := c.Query("created_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &t
		}
	}

	orders, total, err := h.OrderService.ListAdmin(filter)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch orders")
		return
	}
	response.SuccessWithPage(c, orders, handlershared.BuildPagination(page, pageSize, total))
}

// GetOrder fetches an order with its items.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(id)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch order")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus moves an order along the fulfillment lifecycle.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondCRUDError(c, err, "Failed to update order status")
		return
	}
	response.Success(c, order)
}
