package repository

import (
	"errors"

	"github.com/reborn-nursery/storefront/internal/models"

	"gorm.io/gorm"
)

// HeroImageRepository is the hero slide data access interface.
type HeroImageRepository interface {
	List(filter HeroImageListFilter) ([]models.HeroImage, int64, error)
	ListActive() ([]models.HeroImage, error)
	GetByID(id uint) (*models.HeroImage, error)
	Create(hero *models.HeroImage) error
	Update(hero *models.HeroImage) error
	Delete(id uint) error
}

// GormHeroImageRepository is the GORM implementation.
type GormHeroImageRepository struct {
	db *gorm.DB
}

// NewHeroImageRepository creates a hero slide repository.
func NewHeroImageRepository(db *gorm.DB) *GormHeroImageRepository {
	return &GormHeroImageRepository{db: db}
}

// List returns a page of hero slides with the total count.
func (r *GormHeroImageRepository) List(filter HeroImageListFilter) ([]models.HeroImage, int64, error) {
	var heroes []models.HeroImage
	query := r.db.Model(&models.HeroImage{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order ASC, created_at DESC").Find(&heroes).Error; err != nil {
		return nil, 0, err
	}
	return heroes, total, nil
}

// ListActive returns the active slides in display order.
func (r *GormHeroImageRepository) ListActive() ([]models.HeroImage, error) {
	var heroes []models.HeroImage
	if err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

// GetByID fetches a slide by primary key.
func (r *GormHeroImageRepository) GetByID(id uint) (*models.HeroImage, error) {
	var hero models.HeroImage
	if err := r.db.First(&hero, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hero, nil
}

// Create inserts a slide.
func (r *GormHeroImageRepository) Create(hero *models.HeroImage) error {
	return r.db.Create(hero).Error
}

// Update saves a slide.
func (r *GormHeroImageRepository) Update(hero *models.HeroImage) error {
	return r.db.Save(hero).Error
}

// Delete soft deletes a slide.
func (r *GormHeroImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.HeroImage{}, id).Error
}
