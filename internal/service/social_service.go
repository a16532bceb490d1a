package service

import (
	"strings"

	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"
)

// SocialService manages footer social links.
type SocialService struct {
	repo repository.SocialLinkRepository
}

// NewSocialService creates the social link service.
func NewSocialService(repo repository.SocialLinkRepository) *SocialService {
	return &SocialService{repo: repo}
}

// SocialLinkInput is the create/update payload.
type SocialLinkInput struct {
	Platform   string
	URL        string
	Icon       string
	SVGContent string
	IsActive   *bool
	SortOrder  int
}

func validateSocialLinkInput(input SocialLinkInput) error {
	var messages []string
	if strings.TrimSpace(input.Platform) == "" {
		messages = append(messages, "platform is required")
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		messages = append(messages, "url is required")
	} else if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		messages = append(messages, "url must start with http:// or https://")
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// ListPublic returns visible links for the storefront footer.
func (s *SocialService) ListPublic() ([]models.SocialLink, error) {
	links, err := s.repo.ListActive()
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return links, nil
}

// ListAdmin returns links for the back office.
func (s *SocialService) ListAdmin(page, pageSize int) ([]models.SocialLink, int64, error) {
	links, total, err := s.repo.List(repository.SocialLinkListFilter{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return links, total, nil
}

// GetByID fetches a link.
func (s *SocialService) GetByID(id uint) (*models.SocialLink, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if link == nil {
		return nil, ErrNotFound
	}
	return link, nil
}

// Create adds a link.
func (s *SocialService) Create(input SocialLinkInput) (*models.SocialLink, error) {
	if err := validateSocialLinkInput(input); err != nil {
		return nil, err
	}
	link := &models.SocialLink{
		Platform:   strings.TrimSpace(input.Platform),
		URL:        strings.TrimSpace(input.URL),
		Icon:       strings.TrimSpace(input.Icon),
		SVGContent: input.SVGContent,
		IsActive:   true,
		SortOrder:  input.SortOrder,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if err := s.repo.Create(link); err != nil {
		return nil, classifyStorageError(err)
	}
	return link, nil
}

// Update replaces a link's editable fields.
func (s *SocialService) Update(id uint, input SocialLinkInput) (*models.SocialLink, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if link == nil {
		return nil, ErrNotFound
	}
	if err := validateSocialLinkInput(input); err != nil {
		return nil, err
	}

	link.Platform = strings.TrimSpace(input.Platform)
	link.URL = strings.TrimSpace(input.URL)
	link.Icon = strings.TrimSpace(input.Icon)
	link.SVGContent = input.SVGContent
	link.SortOrder = input.SortOrder
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if err := s.repo.Update(link); err != nil {
		return nil, classifyStorageError(err)
	}
	return link, nil
}

// Delete removes a link.
func (s *SocialService) Delete(id uint) error {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return classifyStorageError(err)
	}
	if link == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return classifyStorageError(err)
	}
	return nil
}
