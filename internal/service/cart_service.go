package service

import (
	"context"

	"github.com/reborn-nursery/storefront/internal/cart"
	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/google/uuid"
)

// CartService manages per-session carts. Mutations are serialized per
// session so a read-modify-write always observes the latest state.
type CartService struct {
	store       cart.Store
	productRepo repository.ProductRepository
	locks       cart.KeyMutex
}

// NewCartService creates the cart service.
func NewCartService(store cart.Store, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
	}
}

// CartView is the cart payload returned to clients, with derived totals.
type CartView struct {
	SessionID string       `json:"session_id"`
	Items     []cart.Item  `json:"items"`
	Total     models.Money `json:"total"`
	ItemCount int          `json:"item_count"`
}

func buildCartView(c *cart.Cart) *CartView {
	return &CartView{
		SessionID: c.SessionID,
		Items:     c.Items,
		Total:     models.NewMoneyFromDecimal(c.Total()),
		ItemCount: c.ItemCount(),
	}
}

// NewSessionID issues a fresh cart session identifier.
func (s *CartService) NewSessionID() string {
	return uuid.NewString()
}

func (s *CartService) load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if c == nil {
		c = cart.New(sessionID)
	}
	return c, nil
}

// GetCart returns the session's cart, empty when none exists yet.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return nil, NewValidationError("cart session is required")
	}
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildCartView(c), nil
}

// AddItem snapshots the product into the cart and merges by product id.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint, quantity int) (*CartView, error) {
	if sessionID == "" {
		return nil, NewValidationError("cart session is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.Status != constants.ProductStatusAvailable {
		return nil, NewValidationError("product is not available for purchase")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	c.AddItem(cart.Item{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		Image:     image,
		UnitPrice: product.PriceAmount.Decimal,
		Quantity:  quantity,
	})

	if err := s.store.Save(ctx, c); err != nil {
		return nil, classifyStorageError(err)
	}
	return buildCartView(c), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*CartView, error) {
	if sessionID == "" {
		return nil, NewValidationError("cart session is required")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(productID, quantity)
	if err := s.store.Save(ctx, c); err != nil {
		return nil, classifyStorageError(err)
	}
	return buildCartView(c), nil
}

// RemoveItem drops a product line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (*CartView, error) {
	if sessionID == "" {
		return nil, NewValidationError("cart session is required")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(productID)
	if err := s.store.Save(ctx, c); err != nil {
		return nil, classifyStorageError(err)
	}
	return buildCartView(c), nil
}

// Clear empties the session's cart. Called on explicit user action and
// after a successful order confirmation.
func (s *CartService) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return nil, NewValidationError("cart session is required")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Clear()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, classifyStorageError(err)
	}
	return buildCartView(c), nil
}
