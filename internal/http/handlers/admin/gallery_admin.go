package admin

import (
	"net/http"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GalleryImageRequest is the create/update payload for a gallery photo.
type GalleryImageRequest struct {
	ImageURL   string   `json:"image_url" binding:"required"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	IsFeatured *bool    `json:"is_featured"`
	SortOrder  int      `json:"sort_order"`
}

func (r GalleryImageRequest) toInput() service.GalleryInput {
	return service.GalleryInput{
		ImageURL:   r.ImageURL,
		Title:      r.Title,
		Tags:       r.Tags,
		IsFeatured: r.IsFeatured,
		SortOrder:  r.SortOrder,
	}
}

// GetGalleryImages lists gallery photos for the back office.
func (h *Handler) GetGalleryImages(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	images, total, err := h.GalleryService.ListAdmin(c.Query("search"), page, pageSize)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch gallery")
		return
	}
	response.SuccessWithPage(c, images, handlershared.BuildPagination(page, pageSize, total))
}

// CreateGalleryImage adds a gallery photo.
func (h *Handler) CreateGalleryImage(c *gin.Context) {
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	image, err := h.GalleryService.Create(req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to create gallery image")
		return
	}
	response.Created(c, image)
}

// UpdateGalleryImage replaces a gallery photo's fields.
func (h *Handler) UpdateGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	image, err := h.GalleryService.Update(id, req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to update gallery image")
		return
	}
	response.Success(c, image)
}

// DeleteGalleryImage removes a gallery photo.
func (h *Handler) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.GalleryService.Delete(id); err != nil {
		respondCRUDError(c, err, "Failed to delete gallery image")
		return
	}
	response.NoContent(c)
}
