package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/reborn-nursery/storefront/internal/cart"
	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/provider"
	"github.com/reborn-nursery/storefront/internal/queue"
	"github.com/reborn-nursery/storefront/internal/repository"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPublicTest(t *testing.T) (*gin.Engine, *repository.GormProductRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}

	c := &provider.Container{
		ProductRepo:    productRepo,
		OrderRepo:      orderRepo,
		ProductService: service.NewProductService(productRepo),
		CartService:    service.NewCartService(cart.NewMemoryStore(time.Hour), productRepo),
		OrderService:   service.NewOrderService(orderRepo, productRepo, queueClient),
	}
	h := New(c)

	r := gin.New()
	r.GET("/api/v1/public/products/:slug", h.GetProduct)
	r.GET("/api/v1/cart", h.GetCart)
	r.POST("/api/v1/cart/items", h.AddCartItem)
	r.PUT("/api/v1/cart/items/:product_id", h.UpdateCartItem)
	r.POST("/api/v1/orders", h.CreateOrder)
	r.GET("/api/v1/orders/:reference", h.GetOrder)
	return r, productRepo
}

func seedAvailableProduct(t *testing.T, repo *repository.GormProductRepository, slug string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:        slug,
		Name:        strings.ToUpper(slug[:1]) + slug[1:],
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Images:      models.StringArray{"/uploads/" + slug + ".jpg"},
		Status:      constants.ProductStatusAvailable,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductBySlug(t *testing.T) {
	r, productRepo := setupPublicTest(t)
	seedAvailableProduct(t, productRepo, "baby-rosalie", 349)

	w := doJSON(t, r, http.MethodGet, "/api/v1/public/products/baby-rosalie", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var product models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if product.Slug != "baby-rosalie" {
		t.Fatalf("expected slug baby-rosalie, got %q", product.Slug)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/public/products/no-such-doll", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if errBody.Error != "Product not found" {
		t.Fatalf("expected product not found message, got %q", errBody.Error)
	}
}

func TestCartMintsSessionAndMergesLines(t *testing.T) {
	r, productRepo := setupPublicTest(t)
	product := seedAvailableProduct(t, productRepo, "baby-theodore", 389)

	w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": product.ID, "quantity": 1}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	sessionID := w.Header().Get(constants.HeaderCartSession)
	if sessionID == "" {
		t.Fatal("expected a minted cart session header")
	}

	// Re-adding the same product merges into one line.
	w = doJSON(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": product.ID, "quantity": 2},
		map[string]string{constants.HeaderCartSession: sessionID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view struct {
		Items     []json.RawMessage `json:"items"`
		ItemCount int               `json:"item_count"`
		Total     string            `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(view.Items))
	}
	if view.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", view.ItemCount)
	}
	if view.Total != "1167.00" {
		t.Fatalf("expected total 1167.00, got %q", view.Total)
	}

	// A different session starts empty.
	w = doJSON(t, r, http.MethodGet, "/api/v1/cart", nil,
		map[string]string{constants.HeaderCartSession: "other-session"})
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if view.ItemCount != 0 {
		t.Fatalf("expected other session cart to be empty, got count %d", view.ItemCount)
	}
}

func TestCreateOrderAndCaseInsensitiveLookup(t *testing.T) {
	r, productRepo := setupPublicTest(t)
	product := seedAvailableProduct(t, productRepo, "doll-a", 100)

	payload := gin.H{
		"idempotency_key":  "lookup-checkout-1",
		"customer_name":    "Jamie Doe",
		"customer_email":   "jamie@example.com",
		"shipping_address": "1 Nursery Lane",
		"shipping_city":    "Springfield",
		"shipping_zip":     "12345",
		"shipping_country": "US",
		"total_amount":     115,
		"items":            []gin.H{{"product_id": product.ID, "quantity": 1}},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/orders", payload, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var order struct {
		Reference      string `json:"reference"`
		ShippingAmount string `json:"shipping_amount"`
		TotalAmount    string `json:"total_amount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if order.Reference == "" {
		t.Fatal("expected a generated reference")
	}
	if order.ShippingAmount != "15.00" {
		t.Fatalf("expected shipping 15.00, got %q", order.ShippingAmount)
	}

	// A second checkout attempt with its own key is its own order.
	payload["idempotency_key"] = "lookup-checkout-2"
	w = doJSON(t, r, http.MethodPost, "/api/v1/orders", payload, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected second checkout to succeed, got %d: %s", w.Code, w.Body.String())
	}
	var repeat struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &repeat); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if repeat.Reference == order.Reference {
		t.Fatalf("expected a fresh reference, got %q twice", order.Reference)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/"+strings.ToLower(order.Reference), nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected case-insensitive lookup to succeed, got %d", w.Code)
	}
	var fetched struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if fetched.Reference != order.Reference {
		t.Fatalf("expected reference %q, got %q", order.Reference, fetched.Reference)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/orders/RBZZZZZZZZ", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown reference, got %d", w.Code)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if errBody.Error != "Order not found" {
		t.Fatalf("expected order not found message, got %q", errBody.Error)
	}
}

func TestCreateOrderValidationMessageSurfaced(t *testing.T) {
	r, productRepo := setupPublicTest(t)
	product := seedAvailableProduct(t, productRepo, "doll-b", 50)

	payload := gin.H{
		"customer_name":    "Jamie Doe",
		"customer_email":   "not-an-email",
		"shipping_address": "1 Nursery Lane",
		"shipping_city":    "Springfield",
		"shipping_zip":     "12345",
		"shipping_country": "US",
		"items":            []gin.H{{"product_id": product.ID, "quantity": 1}},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/orders", payload, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(errBody.Error, "customer email is invalid") {
		t.Fatalf("expected the validation message verbatim, got %q", errBody.Error)
	}
	// The payload also omitted the idempotency key; a keyless checkout is
	// a 400 with a field message, never a server error.
	if !strings.Contains(errBody.Error, "idempotency key is required") {
		t.Fatalf("expected the missing key message, got %q", errBody.Error)
	}
}

func TestCreateOrderIdempotencyHeaderReplays(t *testing.T) {
	r, productRepo := setupPublicTest(t)
	product := seedAvailableProduct(t, productRepo, "doll-c", 80)

	payload := gin.H{
		"customer_name":    "Jamie Doe",
		"customer_email":   "jamie@example.com",
		"shipping_address": "1 Nursery Lane",
		"shipping_city":    "Springfield",
		"shipping_zip":     "12345",
		"shipping_country": "US",
		"items":            []gin.H{{"product_id": product.ID, "quantity": 1}},
	}
	headers := map[string]string{constants.HeaderIdempotencyKey: "checkout-once"}

	first := doJSON(t, r, http.MethodPost, "/api/v1/orders", payload, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", first.Code, first.Body.String())
	}
	second := doJSON(t, r, http.MethodPost, "/api/v1/orders", payload, headers)
	if second.Code != http.StatusCreated {
		t.Fatalf("expected 201 on replay, got %d: %s", second.Code, second.Body.String())
	}

	var a, b struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if a.Reference != b.Reference {
		t.Fatalf("expected replay to return the same order, got %q and %q", a.Reference, b.Reference)
	}
}
