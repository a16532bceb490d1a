package service

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/logger"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderNotifier enqueues asynchronous follow-ups after order events.
type OrderNotifier interface {
	EnqueueOrderConfirmation(orderID uint) error
	EnqueueOrderStatusUpdate(orderID uint, status string) error
}

// OrderService materializes carts into orders and resolves references.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    OrderNotifier
}

// NewOrderService creates the order service. notifier may be nil when the
// queue is disabled.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// CreateOrderItem is one requested order line.
type CreateOrderItem struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput is the checkout payload.
type CreateOrderInput struct {
	IdempotencyKey  string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
	ShippingCountry string
	PaymentMethod   string
	TotalAmount     decimal.Decimal
	Items           []CreateOrderItem
	Notes           string
	ClientIP        string
}

func validateCreateOrderInput(input CreateOrderInput) error {
	var messages []string
	if strings.TrimSpace(input.IdempotencyKey) == "" {
		messages = append(messages, "idempotency key is required")
	}
	if len(input.Items) == 0 {
		messages = append(messages, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == 0 {
			messages = append(messages, "item product id is required")
			break
		}
		if item.Quantity < 1 {
			messages = append(messages, "item quantity must be at least 1")
			break
		}
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		messages = append(messages, "customer name is required")
	}
	email := strings.TrimSpace(input.CustomerEmail)
	if email == "" {
		messages = append(messages, "customer email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		messages = append(messages, "customer email is invalid")
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		messages = append(messages, "shipping address is required")
	}
	if strings.TrimSpace(input.ShippingCity) == "" {
		messages = append(messages, "shipping city is required")
	}
	if strings.TrimSpace(input.ShippingZip) == "" {
		messages = append(messages, "shipping zip code is required")
	}
	if strings.TrimSpace(input.ShippingCountry) == "" {
		messages = append(messages, "shipping country is required")
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// mergeCreateOrderItems collapses duplicate product lines.
func mergeCreateOrderItems(items []CreateOrderItem) []CreateOrderItem {
	merged := make([]CreateOrderItem, 0, len(items))
	indexMap := make(map[uint]int)
	for _, item := range items {
		if idx, ok := indexMap[item.ProductID]; ok {
			merged[idx].Quantity += item.Quantity
			continue
		}
		indexMap[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// GenerateReference builds a short shareable order reference. The alphabet
// avoids easily confused characters.
func GenerateReference() string {
	var b strings.Builder
	b.WriteString(constants.OrderReferencePrefix)
	alphabetLen := big.NewInt(int64(len(constants.OrderReferenceAlphabet)))
	for i := 0; i < constants.OrderReferenceLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			b.WriteByte(constants.OrderReferenceAlphabet[0])
			continue
		}
		b.WriteByte(constants.OrderReferenceAlphabet[n.Int64()])
	}
	return b.String()
}

// CanonicalReference normalizes a user-supplied reference for lookup.
// Centralized here so no caller needs to uppercase first.
func CanonicalReference(reference string) string {
	return strings.ToUpper(strings.TrimSpace(reference))
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// Create validates the checkout payload and persists the order with its
// item snapshots. A repeated idempotency key returns the original order
// instead of creating a duplicate.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if err := validateCreateOrderInput(input); err != nil {
		return nil, err
	}

	idempotencyKey := strings.TrimSpace(input.IdempotencyKey)
	existing, err := s.orderRepo.GetByIdempotencyKey(idempotencyKey)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if existing != nil {
		return existing, nil
	}

	items, subtotal, itemCount, err := s.snapshotItems(mergeCreateOrderItems(input.Items))
	if err != nil {
		return nil, err
	}

	total := input.TotalAmount
	if total.IsZero() {
		total = subtotal
	}
	shipping := total.Sub(subtotal)
	if shipping.IsNegative() {
		return nil, ErrAmountMismatch
	}

	order := &models.Order{
		IdempotencyKey:  &idempotencyKey,
		Status:          constants.OrderStatusPending,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		ShippingCity:    strings.TrimSpace(input.ShippingCity),
		ShippingState:   strings.TrimSpace(input.ShippingState),
		ShippingZip:     strings.TrimSpace(input.ShippingZip),
		ShippingCountry: strings.TrimSpace(input.ShippingCountry),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		ShippingAmount:  models.NewMoneyFromDecimal(shipping),
		TotalAmount:     models.NewMoneyFromDecimal(total),
		ItemCount:       itemCount,
		Notes:           strings.TrimSpace(input.Notes),
		ClientIP:        input.ClientIP,
	}

	// Reference collisions are rare; retry with a fresh code. A collision
	// on the idempotency key means a concurrent duplicate submit won.
	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts; attempt++ {
		order.Reference = GenerateReference()
		err := s.orderRepo.Create(order, cloneOrderItems(items))
		if err == nil {
			s.notifyCreated(order)
			return s.reload(order)
		}
		if !isUniqueViolation(err) {
			return nil, classifyStorageError(err)
		}
		existing, lookupErr := s.orderRepo.GetByIdempotencyKey(idempotencyKey)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		logger.Warnw("order_reference_collision", "reference", order.Reference, "attempt", attempt+1)
		order.ID = 0
	}
	return nil, errors.New("order reference generation exhausted retries")
}

func cloneOrderItems(items []models.OrderItem) []models.OrderItem {
	cloned := make([]models.OrderItem, len(items))
	copy(cloned, items)
	for i := range cloned {
		cloned[i].ID = 0
		cloned[i].OrderID = 0
	}
	return cloned
}

// snapshotItems resolves products and freezes name/price per line.
// The subtotal accumulates unrounded.
func (s *OrderService) snapshotItems(items []CreateOrderItem) ([]models.OrderItem, decimal.Decimal, int, error) {
	snapshots := make([]models.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	itemCount := 0
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, decimal.Zero, 0, classifyStorageError(err)
		}
		if product == nil {
			return nil, decimal.Zero, 0, NewValidationError("unknown product in order")
		}
		if product.Status != constants.ProductStatusAvailable {
			return nil, decimal.Zero, 0, NewValidationError("product " + product.Slug + " is not available")
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		lineTotal := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		snapshots = append(snapshots, models.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Slug:       product.Slug,
			Image:      image,
			UnitPrice:  product.PriceAmount,
			Quantity:   item.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
		})
		subtotal = subtotal.Add(lineTotal)
		itemCount += item.Quantity
	}
	return snapshots, subtotal, itemCount, nil
}

func (s *OrderService) reload(order *models.Order) (*models.Order, error) {
	full, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if full == nil {
		return order, nil
	}
	return full, nil
}

func (s *OrderService) notifyCreated(order *models.Order) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.EnqueueOrderConfirmation(order.ID); err != nil {
		logger.Warnw("order_confirmation_enqueue_failed", "order_id", order.ID, "error", err)
	}
}

// GetByReference resolves a reference to the full order. References are
// canonicalized to uppercase here, so mixed-case input resolves the same
// record.
func (s *OrderService) GetByReference(reference string) (*models.Order, error) {
	canonical := CanonicalReference(reference)
	if canonical == "" {
		return nil, ErrNotFound
	}
	order, err := s.orderRepo.GetByReference(canonical)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListAdmin returns orders for the back office.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, 0, classifyStorageError(err)
	}
	return orders, total, nil
}

// GetByID fetches an order for the back office.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusConfirmed, constants.OrderStatusCancelled},
	constants.OrderStatusConfirmed: {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped:   {constants.OrderStatusDelivered},
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range orderStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// UpdateStatus advances an order through its lifecycle and records the
// transition timestamp.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !transitionAllowed(order.Status, status) {
		return nil, NewValidationError("cannot change status from " + order.Status + " to " + status)
	}

	now := time.Now()
	updates := map[string]interface{}{}
	switch status {
	case constants.OrderStatusConfirmed:
		updates["confirmed_at"] = now
	case constants.OrderStatusShipped:
		updates["shipped_at"] = now
	case constants.OrderStatusCancelled:
		updates["cancelled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(id, status, updates); err != nil {
		return nil, classifyStorageError(err)
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueOrderStatusUpdate(id, status); err != nil {
			logger.Warnw("order_status_enqueue_failed", "order_id", id, "status", status, "error", err)
		}
	}
	return s.reload(order)
}
