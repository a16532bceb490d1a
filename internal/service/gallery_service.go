package service

import (
	"strings"

	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"
)

// GalleryService manages the nursery gallery.
type GalleryService struct {
	repo repository.GalleryRepository
}

// NewGalleryService creates the gallery service.
func NewGalleryService(repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

// GalleryInput is the create/update payload.
type GalleryInput struct {
	ImageURL   string
	Title      string
	Tags       []string
	IsFeatured *bool
	SortOrder  int
}

func normalizeTags(tags []string) models.StringArray {
	normalized := make(models.StringArray, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

// ListPublic returns gallery images, optionally filtered by tag.
func (s *GalleryService) ListPublic(tag string, page, pageSize int) ([]models.GalleryImage, int64, error) {
	images, total, err := s.repo.List(repository.GalleryListFilter{
		Page:     page,
		PageSize: pageSize,
		Tag:      strings.ToLower(strings.TrimSpace(tag)),
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return images, total, nil
}

// ListFeatured returns the homepage highlight strip.
func (s *GalleryService) ListFeatured(limit int) ([]models.GalleryImage, error) {
	images, err := s.repo.ListFeatured(limit)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return images, nil
}

// ListAdmin returns gallery images for the back office.
func (s *GalleryService) ListAdmin(search string, page, pageSize int) ([]models.GalleryImage, int64, error) {
	images, total, err := s.repo.List(repository.GalleryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(search),
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return images, total, nil
}

// GetByID fetches a gallery image.
func (s *GalleryService) GetByID(id uint) (*models.GalleryImage, error) {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if image == nil {
		return nil, ErrNotFound
	}
	return image, nil
}

// Create adds a gallery image.
func (s *GalleryService) Create(input GalleryInput) (*models.GalleryImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, NewValidationError("image url is required")
	}
	image := &models.GalleryImage{
		ImageURL:  strings.TrimSpace(input.ImageURL),
		Title:     strings.TrimSpace(input.Title),
		Tags:      normalizeTags(input.Tags),
		SortOrder: input.SortOrder,
	}
	if input.IsFeatured != nil {
		image.IsFeatured = *input.IsFeatured
	}
	if err := s.repo.Create(image); err != nil {
		return nil, classifyStorageError(err)
	}
	return image, nil
}

// Update replaces a gallery image's editable fields.
func (s *GalleryService) Update(id uint, input GalleryInput) (*models.GalleryImage, error) {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if image == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, NewValidationError("image url is required")
	}

	image.ImageURL = strings.TrimSpace(input.ImageURL)
	image.Title = strings.TrimSpace(input.Title)
	image.Tags = normalizeTags(input.Tags)
	image.SortOrder = input.SortOrder
	if input.IsFeatured != nil {
		image.IsFeatured = *input.IsFeatured
	}
	if err := s.repo.Update(image); err != nil {
		return nil, classifyStorageError(err)
	}
	return image, nil
}

// Delete removes a gallery image.
func (s *GalleryService) Delete(id uint) error {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return classifyStorageError(err)
	}
	if image == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return classifyStorageError(err)
	}
	return nil
}
