package repository

import (
	"errors"

	"github.com/reborn-nursery/storefront/internal/models"

	"gorm.io/gorm"
)

// TestimonialRepository is the testimonial data access interface.
type TestimonialRepository interface {
	List(filter TestimonialListFilter) ([]models.Testimonial, int64, error)
	ListActive(limit int) ([]models.Testimonial, error)
	GetByID(id uint) (*models.Testimonial, error)
	Create(testimonial *models.Testimonial) error
	Update(testimonial *models.Testimonial) error
	Delete(id uint) error
}

// GormTestimonialRepository is the GORM implementation.
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a testimonial repository.
func NewTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// List returns a page of testimonials with the total count.
func (r *GormTestimonialRepository) List(filter TestimonialListFilter) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	query := r.db.Model(&models.Testimonial{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order ASC, created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, 0, err
	}
	return testimonials, total, nil
}

// ListActive returns visible testimonials in display order.
func (r *GormTestimonialRepository) ListActive(limit int) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	query := r.db.Where("is_active = ?", true).Order("sort_order ASC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// GetByID fetches a testimonial by primary key.
func (r *GormTestimonialRepository) GetByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &testimonial, nil
}

// Create inserts a testimonial.
func (r *GormTestimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update saves a testimonial.
func (r *GormTestimonialRepository) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete soft deletes a testimonial.
func (r *GormTestimonialRepository) Delete(id uint) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}
