package repository

import (
	"errors"
	"strings"

	"github.com/reborn-nursery/storefront/internal/models"

	"gorm.io/gorm"
)

// GalleryRepository is the gallery data access interface.
type GalleryRepository interface {
	List(filter GalleryListFilter) ([]models.GalleryImage, int64, error)
	ListFeatured(limit int) ([]models.GalleryImage, error)
	GetByID(id uint) (*models.GalleryImage, error)
	Create(image *models.GalleryImage) error
	Update(image *models.GalleryImage) error
	Delete(id uint) error
}

// GormGalleryRepository is the GORM implementation.
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a gallery repository.
func NewGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// List returns a page of gallery images with the total count. Tag filtering
// matches against the JSON-encoded tags column.
func (r *GormGalleryRepository) List(filter GalleryListFilter) ([]models.GalleryImage, int64, error) {
	var images []models.GalleryImage
	query := r.db.Model(&models.GalleryImage{})

	if filter.OnlyFeatured {
		query = query.Where("is_featured = ?", true)
	}
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		query = query.Where("tags LIKE ?", "%\""+tag+"\"%")
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order ASC, created_at DESC").Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

// ListFeatured returns the featured images in display order.
func (r *GormGalleryRepository) ListFeatured(limit int) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	query := r.db.Where("is_featured = ?", true).Order("sort_order ASC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetByID fetches a gallery image by primary key.
func (r *GormGalleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create inserts a gallery image.
func (r *GormGalleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// Update saves a gallery image.
func (r *GormGalleryRepository) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

// Delete soft deletes a gallery image.
func (r *GormGalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}
