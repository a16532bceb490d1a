package public

import (
	"net/http"
	"strconv"

	handlershared "github.com/reborn-nursery/storefront/internal/http/handlers/shared"
	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts lists available dolls for the storefront.
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	products, total, err := h.ProductService.ListPublic(page, pageSize)
	if err != nil {
		handlershared.RespondMappedError(c, err, nil, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct returns a single doll by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		handlershared.RespondMappedError(c, err, []handlershared.MappedHandlerError{
			{Target: service.ErrNotFound, Status: http.StatusNotFound, Message: "Product not found"},
		}, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	response.Success(c, product)
}

// GetHeroImages returns the active hero carousel slides.
func (h *Handler) GetHeroImages(c *gin.Context) {
	heroes, err := h.HeroService.ListPublic()
	if err != nil {
		handlershared.RespondMappedError(c, err, nil, http.StatusInternalServerError, "Failed to fetch hero images")
		return
	}
	response.Success(c, heroes)
}

// GetGallery lists gallery photos, optionally filtered by tag.
func (h *Handler) GetGallery(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	tag := c.Query("tag")

	images, total, err := h.GalleryService.ListPublic(tag, page, pageSize)
	if err != nil {
		handlershared.RespondMappedError(c, err, nil, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}

	response.SuccessWithPage(c, images, handlershared.BuildPagination(page, pageSize, total))
}

// GetFeaturedGallery returns featured gallery photos for the home page.
func (h *Handler) GetFeaturedGallery(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
	if limit <= 0 {
		limit = 8
	}
	if limit > 50 {
		limit = 50
	}

	images, err := h.GalleryService.ListFeatured(limit)
	if err != nil {
		handlershared.RespondMappedError(c, err, nil, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}
	response.Success(c, images)
}

// GetTestimonials returns active testimonials.
func (h *Handler) GetTestimonials(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	testimonials, err := h.TestimonialService.ListPublic(limit)
	if err != nil {
		handlershared.RespondMappedError(c, err, nil, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	response.Success(c, testimonials)
}

// GetSocialLinks returns active social links for the site footer.
func (h *Handler) GetSocialLinks(c *gin.Context) {
	links, err := h.SocialService.ListPublic()
	if err != nil {
		handlershared.RespondMappedError(c, err, nil, http.StatusInternalServerError, "Failed to fetch social links")
		return
	}
	response.Success(c, links)
}
