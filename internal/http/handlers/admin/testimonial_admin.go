package admin

import (
	"net/http"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// TestimonialRequest is the create/update payload for a testimonial.
type TestimonialRequest struct {
	Author    string `json:"author" binding:"required"`
	Location  string `json:"location"`
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

func (r TestimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		Author:    r.Author,
		Location:  r.Location,
		Content:   r.Content,
		Rating:    r.Rating,
		IsActive:  r.IsActive,
		SortOrder: r.SortOrder,
	}
}

// GetTestimonials lists testimonials for the back office.
func (h *Handler) GetTestimonials(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	testimonials, total, err := h.TestimonialService.ListAdmin(page, pageSize)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch testimonials")
		return
	}
	response.SuccessWithPage(c, testimonials, handlershared.BuildPagination(page, pageSize, total))
}

// CreateTestimonial adds a testimonial.
func (h *Handler) CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	testimonial, err := h.TestimonialService.Create(req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to create testimonial")
		return
	}
	response.Created(c, testimonial)
}

// UpdateTestimonial replaces a testimonial's fields.
func (h *Handler) UpdateTestimonial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	testimonial, err := h.TestimonialService.Update(id, req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to update testimonial")
		return
	}
	response.Success(c, testimonial)
}

// DeleteTestimonial removes a testimonial.
func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.TestimonialService.Delete(id); err != nil {
		respondCRUDError(c, err, "Failed to delete testimonial")
		return
	}
	response.NoContent(c)
}
