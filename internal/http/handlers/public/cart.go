package public

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest is the add-to-cart payload.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CartQuantityRequest is the change-quantity payload.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartSession resolves the session id from the request header, minting a
// fresh one when the visitor has none yet. The id is echoed back on every
// cart response so the client can persist it.
func (h *Handler) cartSession(c *gin.Context) string {
	sessionID := strings.TrimSpace(c.GetHeader(constants.HeaderCartSession))
	if sessionID == "" {
		sessionID = h.CartService.NewSessionID()
	}
	c.Header(constants.HeaderCartSession, sessionID)
	return sessionID
}

func cartProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return 0, false
	}
	return uint(id), true
}

// GetCart returns the visitor's cart, creating an empty one when needed.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID := h.cartSession(c)

	view, err := h.CartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// AddCartItem adds a doll to the cart or bumps its quantity.
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID := h.cartSession(c)

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid cart request", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	view, err := h.CartService.AddItem(c.Request.Context(), sessionID, req.ProductID, quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItem sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID := h.cartSession(c)

	productID, ok := cartProductID(c)
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid cart request", err)
		return
	}

	view, err := h.CartService.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// RemoveCartItem removes a line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID := h.cartSession(c)

	productID, ok := cartProductID(c)
	if !ok {
		return
	}

	view, err := h.CartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID := h.cartSession(c)

	view, err := h.CartService.Clear(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}
