package admin

import (
	"net/http"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// HeroImageRequest is the create/update payload for a hero slide.
type HeroImageRequest struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url" binding:"required"`
	Link      string `json:"link"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (r HeroImageRequest) toInput() service.HeroInput {
	return service.HeroInput{
		Title:     r.Title,
		Subtitle:  r.Subtitle,
		ImageURL:  r.ImageURL,
		Link:      r.Link,
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
	}
}

func parseBoolQuery(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

// GetHeroImages lists hero slides for the back office.
func (h *Handler) GetHeroImages(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	heroes, total, err := h.HeroService.ListAdmin(parseBoolQuery(c, "is_active"), page, pageSize)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch hero images")
		return
	}
	response.SuccessWithPage(c, heroes, handlershared.BuildPagination(page, pageSize, total))
}

// CreateHeroImage adds a hero slide.
func (h *Handler) CreateHeroImage(c *gin.Context) {
	var req HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	hero, err := h.HeroService.Create(req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to create hero image")
		return
	}
	response.Created(c, hero)
}

// UpdateHeroImage replaces a hero slide's fields.
func (h *Handler) UpdateHeroImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	hero, err := h.HeroService.Update(id, req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to update hero image")
		return
	}
	response.Success(c, hero)
}

// DeleteHeroImage removes a hero slide.
func (h *Handler) DeleteHeroImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.HeroService.Delete(id); err != nil {
		respondCRUDError(c, err, "Failed to delete hero image")
		return
	}
	response.NoContent(c)
}
