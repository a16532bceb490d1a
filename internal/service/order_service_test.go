package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	confirmations []uint
	statusUpdates []string
}

func (f *fakeNotifier) EnqueueOrderConfirmation(orderID uint) error {
	f.confirmations = append(f.confirmations, orderID)
	return nil
}

func (f *fakeNotifier) EnqueueOrderStatusUpdate(orderID uint, status string) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func setupOrderServiceTest(t *testing.T) (*OrderService, *repository.GormProductRepository, *fakeNotifier) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifier := &fakeNotifier{}
	return NewOrderService(orderRepo, productRepo, notifier), productRepo, notifier
}

func seedProduct(t *testing.T, repo *repository.GormProductRepository, slug string, price int64, status string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:        slug,
		Name:        strings.ToUpper(slug[:1]) + slug[1:],
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Images:      models.StringArray{"/uploads/" + slug + ".jpg"},
		Status:      status,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func baseCreateInput(productID uint) CreateOrderInput {
	return CreateOrderInput{
		IdempotencyKey:  uuid.NewString(),
		CustomerName:    "Jamie Doe",
		CustomerEmail:   "jamie@example.com",
		ShippingAddress: "1 Nursery Lane",
		ShippingCity:    "Springfield",
		ShippingZip:     "12345",
		ShippingCountry: "US",
		Items:           []CreateOrderItem{{ProductID: productID, Quantity: 1}},
	}
}

func TestCreateOrderGeneratesReadableReference(t *testing.T) {
	svc, productRepo, notifier := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	order, err := svc.Create(baseCreateInput(product.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.HasPrefix(order.Reference, constants.OrderReferencePrefix) {
		t.Fatalf("reference %q lacks prefix", order.Reference)
	}
	if len(order.Reference) != len(constants.OrderReferencePrefix)+constants.OrderReferenceLength {
		t.Fatalf("reference %q has wrong length", order.Reference)
	}
	for _, r := range order.Reference[len(constants.OrderReferencePrefix):] {
		if !strings.ContainsRune(constants.OrderReferenceAlphabet, r) {
			t.Fatalf("reference %q contains %q outside the alphabet", order.Reference, r)
		}
	}
	if len(notifier.confirmations) != 1 {
		t.Fatalf("expected 1 confirmation enqueue, got %d", len(notifier.confirmations))
	}
}

func TestCreateOrderPersistsShippingAmount(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "doll-a", 100, constants.ProductStatusAvailable)

	input := baseCreateInput(product.ID)
	input.TotalAmount = decimal.NewFromInt(115)

	order, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.Subtotal.String() != "100.00" {
		t.Fatalf("subtotal = %s, want 100.00", order.Subtotal.String())
	}
	if order.ShippingAmount.String() != "15.00" {
		t.Fatalf("shipping = %s, want 15.00", order.ShippingAmount.String())
	}
	if order.TotalAmount.String() != "115.00" {
		t.Fatalf("total = %s, want 115.00", order.TotalAmount.String())
	}
}

func TestCreateOrderRejectsTotalBelowSubtotal(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	input := baseCreateInput(product.ID)
	input.TotalAmount = decimal.NewFromInt(50)

	if _, err := svc.Create(input); !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	cases := []struct {
		name   string
		mutate func(*CreateOrderInput)
	}{
		{"missing idempotency key", func(in *CreateOrderInput) { in.IdempotencyKey = " " }},
		{"empty items", func(in *CreateOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{"missing email", func(in *CreateOrderInput) { in.CustomerEmail = "" }},
		{"malformed email", func(in *CreateOrderInput) { in.CustomerEmail = "not-an-email" }},
		{"missing address", func(in *CreateOrderInput) { in.ShippingAddress = " " }},
		{"missing city", func(in *CreateOrderInput) { in.ShippingCity = "" }},
		{"missing zip", func(in *CreateOrderInput) { in.ShippingZip = "" }},
		{"missing country", func(in *CreateOrderInput) { in.ShippingCountry = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := baseCreateInput(product.ID)
			tc.mutate(&input)
			if _, err := svc.Create(input); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation failure, got %v", err)
			}
		})
	}
}

func TestCreateOrderMergesDuplicateLines(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 25, constants.ProductStatusAvailable)

	input := baseCreateInput(product.ID)
	input.Items = []CreateOrderItem{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: product.ID, Quantity: 2},
	}

	order, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected merged single line, got %d", len(order.Items))
	}
	if order.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", order.Items[0].Quantity)
	}
	if order.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", order.ItemCount)
	}
}

func TestCreateOrderSnapshotsProductFields(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	order, err := svc.Create(baseCreateInput(product.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Mutate the live product; the order snapshot must not change.
	product.Name = "Renamed"
	product.PriceAmount = models.NewMoneyFromDecimal(decimal.NewFromInt(999))
	if err := productRepo.Update(product); err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	got, err := svc.GetByReference(order.Reference)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Items[0].Name != "Ava" {
		t.Fatalf("snapshot name = %q, want Ava", got.Items[0].Name)
	}
	if got.Items[0].UnitPrice.String() != "100.00" {
		t.Fatalf("snapshot price = %s, want 100.00", got.Items[0].UnitPrice.String())
	}
}

func TestCreateOrderRejectsUnavailableProduct(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "sold-doll", 100, constants.ProductStatusSold)

	if _, err := svc.Create(baseCreateInput(product.ID)); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for sold product, got %v", err)
	}
}

func TestCreateOrderIdempotencyKeyDeduplicates(t *testing.T) {
	svc, productRepo, notifier := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	input := baseCreateInput(product.ID)
	input.IdempotencyKey = "checkout-attempt-1"

	first, err := svc.Create(input)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.Create(input)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first.ID != second.ID || first.Reference != second.Reference {
		t.Fatalf("expected dedup to return the original order")
	}
	if len(notifier.confirmations) != 1 {
		t.Fatalf("expected single confirmation enqueue, got %d", len(notifier.confirmations))
	}

	orders, total, err := svc.ListAdmin(repository.OrderListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected exactly one persisted order, got %d", total)
	}
}

func TestCreateOrderDistinctKeysCreateDistinctOrders(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	// Each checkout attempt carries its own key, so consecutive orders in
	// one store must never collide with each other.
	first, err := svc.Create(baseCreateInput(product.ID))
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.Create(baseCreateInput(product.ID))
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first.ID == second.ID || first.Reference == second.Reference {
		t.Fatalf("expected two distinct orders, got %q and %q", first.Reference, second.Reference)
	}

	orders, total, err := svc.ListAdmin(repository.OrderListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected two persisted orders, got %d", total)
	}
}

func TestCreateOrderMissingKeyMessage(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	input := baseCreateInput(product.ID)
	input.IdempotencyKey = ""

	_, err := svc.Create(input)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(validationErr.Error(), "idempotency key is required") {
		t.Fatalf("unexpected messages: %q", validationErr.Error())
	}
}

func TestGetByReferenceIsCaseInsensitive(t *testing.T) {
	svc, productRepo, _ := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	order, err := svc.Create(baseCreateInput(product.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	lower, err := svc.GetByReference(strings.ToLower(order.Reference))
	if err != nil {
		t.Fatalf("lowercase lookup failed: %v", err)
	}
	upper, err := svc.GetByReference("  " + order.Reference + " ")
	if err != nil {
		t.Fatalf("padded lookup failed: %v", err)
	}
	if lower.ID != order.ID || upper.ID != order.ID {
		t.Fatalf("case variants resolved different orders")
	}
}

func TestGetByReferenceUnknownIsNotFound(t *testing.T) {
	svc, _, _ := setupOrderServiceTest(t)

	if _, err := svc.GetByReference("RBZZZZZZZZ"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByReference("   "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank reference, got %v", err)
	}
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	svc, productRepo, notifier := setupOrderServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)

	order, err := svc.Create(baseCreateInput(product.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	confirmed, err := svc.UpdateStatus(order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != constants.OrderStatusConfirmed || confirmed.ConfirmedAt == nil {
		t.Fatalf("expected confirmed status with timestamp")
	}

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected invalid transition confirmed->delivered, got %v", err)
	}

	if len(notifier.statusUpdates) != 1 || notifier.statusUpdates[0] != constants.OrderStatusConfirmed {
		t.Fatalf("expected status update enqueue for confirmation")
	}
}

func TestGenerateReferenceShape(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		ref := GenerateReference()
		if len(ref) != len(constants.OrderReferencePrefix)+constants.OrderReferenceLength {
			t.Fatalf("reference %q has wrong length", ref)
		}
		for _, r := range ref[len(constants.OrderReferencePrefix):] {
			if !strings.ContainsRune(constants.OrderReferenceAlphabet, r) {
				t.Fatalf("reference %q contains %q outside the alphabet", ref, r)
			}
		}
		seen[ref] = struct{}{}
	}
	if len(seen) < 190 {
		t.Fatalf("references collide too often: %d unique of 200", len(seen))
	}
}

func TestCanonicalReference(t *testing.T) {
	if got := CanonicalReference("  rbab12cd34 "); got != "RBAB12CD34" {
		t.Fatalf("CanonicalReference = %q", got)
	}
}
