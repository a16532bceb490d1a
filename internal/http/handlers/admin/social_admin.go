package admin

import (
	"net/http"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// SocialLinkRequest is the create/update payload for a social link.
type SocialLinkRequest struct {
	Platform   string `json:"platform" binding:"required"`
	URL        string `json:"url" binding:"required"`
	Icon       string `json:"icon"`
	SVGContent string `json:"svg_content"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

func (r SocialLinkRequest) toInput() service.SocialLinkInput {
	return service.SocialLinkInput{
		Platform:   r.Platform,
		URL:        r.URL,
		Icon:       r.Icon,
		SVGContent: r.SVGContent,
		IsActive:   r.IsActive,
		SortOrder:  r.SortOrder,
	}
}

// GetSocialLinks lists social links for the back office.
func (h *Handler) GetSocialLinks(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	links, total, err := h.SocialService.ListAdmin(page, pageSize)
	if err != nil {
		respondCRUDError(c, err, "Failed to fetch social links")
		return
	}
	response.SuccessWithPage(c, links, handlershared.BuildPagination(page, pageSize, total))
}

// CreateSocialLink adds a social link.
func (h *Handler) CreateSocialLink(c *gin.Context) {
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	link, err := h.SocialService.Create(req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to create social link")
		return
	}
	response.Created(c, link)
}

// UpdateSocialLink replaces a social link's fields.
func (h *Handler) UpdateSocialLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	link, err := h.SocialService.Update(id, req.toInput())
	if err != nil {
		respondCRUDError(c, err, "Failed to update social link")
		return
	}
	response.Success(c, link)
}

// DeleteSocialLink removes a social link.
func (h *Handler) DeleteSocialLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.SocialService.Delete(id); err != nil {
		respondCRUDError(c, err, "Failed to delete social link")
		return
	}
	response.NoContent(c)
}
