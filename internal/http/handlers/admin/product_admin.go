package admin

import (
	"net/http"
	"strconv"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest is the create/update payload for a doll listing.
type ProductRequest struct {
	Name                string          `json:"name" binding:"required"`
	Slug                string          `json:"slug"`
	Price               decimal.Decimal `json:"price"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailed_description"`
	MaterialsAndCare    string          `json:"materials_and_care"`
	ShippingInfo        string          `json:"shipping_info"`
	Images              []string        `json:"images"`
	Status              string          `json:"status"`
	SortOrder           int             `json:"sort_order"`
}

// ProductStatusRequest changes only the listing status.
type ProductStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:                r.Name,
		Slug:                r.Slug,
		Price:               r.Price,
		Description:         r.Description,
		DetailedDescription: r.DetailedDescription,
		MaterialsAndCare:    r.MaterialsAndCare,
		ShippingInfo:        r.ShippingInfo,
		Images:              r.Images,
		Status:              r.Status,
		SortOrder:           r.SortOrder,
	}
}

// GetProducts lists dolls for the back office, drafts included.
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	status := c.Query("status")
	search := c.Query("search")

	products, total, err := h.ProductService.ListAdmin(status, search, page, pageSize)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch products")
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct fetches a single doll by id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch product")
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a doll listing.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to create product")
		return
	}
	response.Created(c, product)
}

// UpdateProduct replaces a doll listing's fields.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to update product")
		return
	}
	response.Success(c, product)
}

// UpdateProductStatus moves a doll between draft, available, reserved
// and sold.
func (h *Handler) UpdateProductStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if err := h.ProductService.UpdateStatus(id, req.Status); err != nil {
		respondCRUDError(c, err, "Failed to update product status")
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteProduct removes a doll listing.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondCRUDError(c, err, "Failed to delete product")
		return
	}
	response.NoContent(c)
}
