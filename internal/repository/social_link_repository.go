package repository

import (
	"errors"
	"strings"

	"github.com/reborn-nursery/storefront/internal/models"

	"gorm.io/gorm"
)

// SocialLinkRepository is the social link data access interface.
type SocialLinkRepository interface {
	List(filter SocialLinkListFilter) ([]models.SocialLink, int64, error)
	ListActive() ([]models.SocialLink, error)
	GetByID(id uint) (*models.SocialLink, error)
	Create(link *models.SocialLink) error
	Update(link *models.SocialLink) error
	Delete(id uint) error
}

// GormSocialLinkRepository is the GORM implementation.
type GormSocialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository creates a social link repository.
func NewSocialLinkRepository(db *gorm.DB) *GormSocialLinkRepository {
	return &GormSocialLinkRepository{db: db}
}

// List returns a page of social links with the total count.
func (r *GormSocialLinkRepository) List(filter SocialLinkListFilter) ([]models.SocialLink, int64, error) {
	var links []models.SocialLink
	query := r.db.Model(&models.SocialLink{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if platform := strings.TrimSpace(filter.Platform); platform != "" {
		query = query.Where("platform = ?", platform)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order ASC, created_at DESC").Find(&links).Error; err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

// ListActive returns visible links in display order.
func (r *GormSocialLinkRepository) ListActive() ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetByID fetches a link by primary key.
func (r *GormSocialLinkRepository) GetByID(id uint) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := r.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// Create inserts a link.
func (r *GormSocialLinkRepository) Create(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// Update saves a link.
func (r *GormSocialLinkRepository) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

// Delete soft deletes a link.
func (r *GormSocialLinkRepository) Delete(id uint) error {
	return r.db.Delete(&models.SocialLink{}, id).Error
}
