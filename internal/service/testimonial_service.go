package service

import (
	"strings"

	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"
)

// TestimonialService manages customer reviews.
type TestimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates the testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// TestimonialInput is the create/update payload.
type TestimonialInput struct {
	Author    string
	Location  string
	Content   string
	Rating    int
	IsActive  *bool
	SortOrder int
}

func validateTestimonialInput(input TestimonialInput) error {
	var messages []string
	if strings.TrimSpace(input.Author) == "" {
		messages = append(messages, "author is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		messages = append(messages, "content is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		messages = append(messages, "rating must be between 1 and 5")
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// ListPublic returns visible testimonials.
func (s *TestimonialService) ListPublic(limit int) ([]models.Testimonial, error) {
	testimonials, err := s.repo.ListActive(limit)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return testimonials, nil
}

// ListAdmin returns testimonials for the back office.
func (s *TestimonialService) ListAdmin(page, pageSize int) ([]models.Testimonial, int64, error) {
	testimonials, total, err := s.repo.List(repository.TestimonialListFilter{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return testimonials, total, nil
}

// GetByID fetches a testimonial.
func (s *TestimonialService) GetByID(id uint) (*models.Testimonial, error) {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if testimonial == nil {
		return nil, ErrNotFound
	}
	return testimonial, nil
}

// Create adds a testimonial.
func (s *TestimonialService) Create(input TestimonialInput) (*models.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}
	testimonial := &models.Testimonial{
		Author:    strings.TrimSpace(input.Author),
		Location:  strings.TrimSpace(input.Location),
		Content:   strings.TrimSpace(input.Content),
		Rating:    input.Rating,
		IsActive:  true,
		SortOrder: input.SortOrder,
	}
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}
	if err := s.repo.Create(testimonial); err != nil {
		return nil, classifyStorageError(err)
	}
	return testimonial, nil
}

// Update replaces a testimonial's editable fields.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*models.Testimonial, error) {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if testimonial == nil {
		return nil, ErrNotFound
	}
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	testimonial.Author = strings.TrimSpace(input.Author)
	testimonial.Location = strings.TrimSpace(input.Location)
	testimonial.Content = strings.TrimSpace(input.Content)
	testimonial.Rating = input.Rating
	testimonial.SortOrder = input.SortOrder
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}
	if err := s.repo.Update(testimonial); err != nil {
		return nil, classifyStorageError(err)
	}
	return testimonial, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(id uint) error {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		return classifyStorageError(err)
	}
	if testimonial == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return classifyStorageError(err)
	}
	return nil
}
