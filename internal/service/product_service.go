package service

import (
	"regexp"
	"strings"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService handles catalog listings.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Name                string
	Slug                string
	Price               decimal.Decimal
	Description         string
	DetailedDescription string
	MaterialsAndCare    string
	ShippingInfo        string
	Images              []string
	Status              string
	SortOrder           int
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a product name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func validProductStatus(status string) bool {
	switch status {
	case constants.ProductStatusDraft,
		constants.ProductStatusAvailable,
		constants.ProductStatusReserved,
		constants.ProductStatusSold:
		return true
	}
	return false
}

func (s *ProductService) validateInput(input ProductInput) error {
	var messages []string
	if strings.TrimSpace(input.Name) == "" {
		messages = append(messages, "name is required")
	}
	if input.Price.IsNegative() {
		messages = append(messages, "price must not be negative")
	}
	if input.Status != "" && !validProductStatus(input.Status) {
		messages = append(messages, "unknown status")
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// ListPublic returns available products for the storefront.
func (s *ProductService) ListPublic(page, pageSize int) ([]models.Product, int64, error) {
	products, total, err := s.repo.List(repository.ProductListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return products, total, nil
}

// ListAdmin returns products for the back office.
func (s *ProductService) ListAdmin(status, search string, page, pageSize int) ([]models.Product, int64, error) {
	products, total, err := s.repo.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(status),
		Search:   strings.TrimSpace(search),
	})
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return products, total, nil
}

// GetBySlug resolves a storefront product page.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetByID fetches a product for the back office.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create adds a product, deriving a slug from the name when absent.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Name)
	}
	if slug == "" {
		return nil, NewValidationError("slug could not be derived from name")
	}
	existing, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if existing != nil {
		return nil, ErrDuplicateSlug
	}

	status := input.Status
	if status == "" {
		status = constants.ProductStatusDraft
	}

	product := &models.Product{
		Slug:                slug,
		Name:                strings.TrimSpace(input.Name),
		PriceAmount:         models.NewMoneyFromDecimal(input.Price),
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
		MaterialsAndCare:    input.MaterialsAndCare,
		ShippingInfo:        input.ShippingInfo,
		Images:              models.StringArray(input.Images),
		Status:              status,
		SortOrder:           input.SortOrder,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, classifyStorageError(err)
	}
	return product, nil
}

// Update replaces a product's editable fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = product.Slug
	}
	if slug != product.Slug {
		existing, err := s.repo.GetBySlug(slug)
		if err != nil {
			return nil, classifyStorageError(err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateSlug
		}
	}

	product.Slug = slug
	product.Name = strings.TrimSpace(input.Name)
	product.PriceAmount = models.NewMoneyFromDecimal(input.Price)
	product.Description = input.Description
	product.DetailedDescription = input.DetailedDescription
	product.MaterialsAndCare = input.MaterialsAndCare
	product.ShippingInfo = input.ShippingInfo
	product.Images = models.StringArray(input.Images)
	if input.Status != "" {
		product.Status = input.Status
	}
	product.SortOrder = input.SortOrder

	if err := s.repo.Update(product); err != nil {
		return nil, classifyStorageError(err)
	}
	return product, nil
}

// UpdateStatus changes only the listing status.
func (s *ProductService) UpdateStatus(id uint, status string) error {
	if !validProductStatus(status) {
		return NewValidationError("unknown status")
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return classifyStorageError(err)
	}
	if product == nil {
		return ErrNotFound
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return classifyStorageError(err)
	}
	return nil
}

// Delete removes a product listing.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return classifyStorageError(err)
	}
	if product == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return classifyStorageError(err)
	}
	return nil
}
