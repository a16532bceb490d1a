package service

import (
	"strings"

	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"
)

// HeroService manages homepage hero slides.
type HeroService struct {
	repo repository.HeroImageRepository
}

// NewHeroService creates the hero service.
func NewHeroService(repo repository.HeroImageRepository) *HeroService {
	return &HeroService{repo: repo}
}

// HeroInput is the create/update payload.
type HeroInput struct {
	Title     string
	Subtitle  string
	ImageURL  string
	Link      string
	SortOrder int
	IsActive  *bool
}

// ListPublic returns active slides for the storefront.
func (s *HeroService) ListPublic() ([]models.HeroImage, error) {
	heroes, err := s.repo.ListActive()
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return heroes, nil
}

// ListAdmin returns slides for the back office.
func (s *HeroService) ListAdmin(isActive *bool, page, pageSize int) ([]models.HeroImage, int64, error) {
	heroes, total, err := s.repo.List(repository.HeroImageListFilter{
		Page:     page,
		PageSize: pageSize,
		IsActive: isActive,
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return heroes, total, nil
}

// GetByID fetches a slide.
func (s *HeroService) GetByID(id uint) (*models.HeroImage, error) {
	hero, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if hero == nil {
		return nil, ErrNotFound
	}
	return hero, nil
}

// Create adds a slide.
func (s *HeroService) Create(input HeroInput) (*models.HeroImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, NewValidationError("image url is required")
	}
	hero := &models.HeroImage{
		Title:     strings.TrimSpace(input.Title),
		Subtitle:  strings.TrimSpace(input.Subtitle),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		Link:      strings.TrimSpace(input.Link),
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		hero.IsActive = *input.IsActive
	}
	if err := s.repo.Create(hero); err != nil {
		return nil, classifyStorageError(err)
	}
	return hero, nil
}

// Update replaces a slide's editable fields.
func (s *HeroService) Update(id uint, input HeroInput) (*models.HeroImage, error) {
	hero, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if hero == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, NewValidationError("image url is required")
	}

	hero.Title = strings.TrimSpace(input.Title)
	hero.Subtitle = strings.TrimSpace(input.Subtitle)
	hero.ImageURL = strings.TrimSpace(input.ImageURL)
	hero.Link = strings.TrimSpace(input.Link)
	hero.SortOrder = input.SortOrder
	if input.IsActive != nil {
		hero.IsActive = *input.IsActive
	}
	if err := s.repo.Update(hero); err != nil {
		return nil, classifyStorageError(err)
	}
	return hero, nil
}

// Delete removes a slide.
func (s *HeroService) Delete(id uint) error {
	hero, err := s.repo.GetByID(id)
	if err != nil {
		return classifyStorageError(err)
	}
	if hero == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return classifyStorageError(err)
	}
	return nil
}
