package repository

import "time"

// ProductListFilter filters product list queries.
type ProductListFilter struct {
	Page          int
	PageSize      int
	Status        string
	Search        string
	OnlyAvailable bool
	OrderBy       string
}

// OrderListFilter filters order list queries.
type OrderListFilter struct {
	Page          int
	PageSize      int
	Status        string
	Reference     string
	CustomerEmail string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// HeroImageListFilter filters hero slide queries.
type HeroImageListFilter struct {
	Page       int
	PageSize   int
	IsActive   *bool
	OnlyActive bool
}

// GalleryListFilter filters gallery queries.
type GalleryListFilter struct {
	Page         int
	PageSize     int
	Tag          string
	OnlyFeatured bool
	Search       string
}

// TestimonialListFilter filters testimonial queries.
type TestimonialListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
	MinRating  int
}

// SocialLinkListFilter filters social link queries.
type SocialLinkListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
	Platform   string
}

// AdminListFilter filters back-office account queries.
type AdminListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
}
