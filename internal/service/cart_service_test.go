package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/reborn-nursery/storefront/internal/cart"
	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *repository.GormProductRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	store := cart.NewMemoryStore(time.Hour)
	return NewCartService(store, productRepo), productRepo
}

func TestCartAddItemSnapshotsProduct(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 189, constants.ProductStatusAvailable)
	ctx := context.Background()
	session := svc.NewSessionID()

	view, err := svc.AddItem(ctx, session, product.ID, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(view.Items))
	}
	item := view.Items[0]
	if item.Name != "Ava" || item.Slug != "ava" || item.Image != "/uploads/ava.jpg" {
		t.Fatalf("unexpected snapshot: %+v", item)
	}
	if view.Total.String() != "189.00" || view.ItemCount != 1 {
		t.Fatalf("unexpected totals: %s / %d", view.Total.String(), view.ItemCount)
	}
}

func TestCartRepeatedAddMergesQuantity(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 25, constants.ProductStatusAvailable)
	ctx := context.Background()
	session := svc.NewSessionID()

	for i := 0; i < 3; i++ {
		if _, err := svc.AddItem(ctx, session, product.ID, 1); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}
	view, err := svc.GetCart(ctx, session)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 3 {
		t.Fatalf("expected one line with quantity 3")
	}
}

func TestCartScenarioTotalsAndCount(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	p1 := seedProduct(t, productRepo, "p1", 25, constants.ProductStatusAvailable)
	p2 := seedProduct(t, productRepo, "p2", 10, constants.ProductStatusAvailable)
	ctx := context.Background()
	session := svc.NewSessionID()

	if _, err := svc.AddItem(ctx, session, p1.ID, 1); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	if _, err := svc.AddItem(ctx, session, p1.ID, 1); err != nil {
		t.Fatalf("add p1 again: %v", err)
	}
	view, err := svc.AddItem(ctx, session, p2.ID, 1)
	if err != nil {
		t.Fatalf("add p2: %v", err)
	}

	if len(view.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Items))
	}
	if view.Total.String() != "60.00" {
		t.Fatalf("total = %s, want 60.00", view.Total.String())
	}
	if view.ItemCount != 3 {
		t.Fatalf("item count = %d, want 3", view.ItemCount)
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)
	ctx := context.Background()
	session := svc.NewSessionID()

	if _, err := svc.AddItem(ctx, session, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.UpdateQuantity(ctx, session, product.ID, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(view.Items) != 0 || view.ItemCount != 0 {
		t.Fatalf("expected empty cart after zero quantity")
	}
}

func TestCartClear(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)
	ctx := context.Background()
	session := svc.NewSessionID()

	if _, err := svc.AddItem(ctx, session, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.Clear(ctx, session)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if view.ItemCount != 0 || !view.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero totals after clear")
	}
}

func TestCartRejectsUnavailableProduct(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	product := seedProduct(t, productRepo, "sold-doll", 100, constants.ProductStatusSold)
	ctx := context.Background()
	session := svc.NewSessionID()

	if _, err := svc.AddItem(ctx, session, product.ID, 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestCartUnknownProductIsNotFound(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	ctx := context.Background()
	session := svc.NewSessionID()

	if _, err := svc.AddItem(ctx, session, 999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	svc, productRepo := setupCartServiceTest(t)
	product := seedProduct(t, productRepo, "ava", 100, constants.ProductStatusAvailable)
	ctx := context.Background()

	sessionA := svc.NewSessionID()
	sessionB := svc.NewSessionID()

	if _, err := svc.AddItem(ctx, sessionA, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	viewB, err := svc.GetCart(ctx, sessionB)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if viewB.ItemCount != 0 {
		t.Fatalf("session B should start empty")
	}
}

func TestCartRequiresSession(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	ctx := context.Background()

	if _, err := svc.GetCart(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for missing session, got %v", err)
	}
}
