package repository

import (
	"testing"

	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate products failed: %v", err)
	}
	return NewProductRepository(db)
}

func createProduct(t *testing.T, repo *GormProductRepository, slug, name, status string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:        slug,
		Name:        name,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
		Images:      models.StringArray{"/uploads/" + slug + ".jpg"},
		Status:      status,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductGetBySlug(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createProduct(t, repo, "ava", "Ava", constants.ProductStatusAvailable)

	got, err := repo.GetBySlug("ava")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil || got.Name != "Ava" {
		t.Fatalf("expected product Ava")
	}

	missing, err := repo.GetBySlug("nope")
	if err != nil || missing != nil {
		t.Fatalf("missing slug should return nil, nil")
	}
}

func TestProductListOnlyAvailable(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createProduct(t, repo, "ava", "Ava", constants.ProductStatusAvailable)
	createProduct(t, repo, "mia", "Mia", constants.ProductStatusDraft)
	createProduct(t, repo, "zoe", "Zoe", constants.ProductStatusSold)

	products, total, err := repo.List(ProductListFilter{OnlyAvailable: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Slug != "ava" {
		t.Fatalf("expected only the available product, got total=%d", total)
	}
}

func TestProductListSearch(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createProduct(t, repo, "ava-rose", "Ava Rose", constants.ProductStatusAvailable)
	createProduct(t, repo, "mia", "Mia", constants.ProductStatusAvailable)

	products, total, err := repo.List(ProductListFilter{Search: "rose", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Slug != "ava-rose" {
		t.Fatalf("expected search to match ava-rose")
	}
}

func TestProductUpdateStatus(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createProduct(t, repo, "ava", "Ava", constants.ProductStatusAvailable)

	if err := repo.UpdateStatus(product.ID, constants.ProductStatusSold); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	got, _ := repo.GetByID(product.ID)
	if got.Status != constants.ProductStatusSold {
		t.Fatalf("status = %q, want sold", got.Status)
	}
}

func TestProductDeleteHidesFromList(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createProduct(t, repo, "ava", "Ava", constants.ProductStatusAvailable)

	if err := repo.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected deleted product hidden, total=%d", total)
	}
}
