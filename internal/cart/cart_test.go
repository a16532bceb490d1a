package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func priceOf(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAddItemMergesByProduct(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, Name: "Ava", UnitPrice: priceOf("189.99"), Quantity: 1})
	c.AddItem(Item{ProductID: 1, Name: "Ava", UnitPrice: priceOf("189.99"), Quantity: 2})

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", c.Items[0].Quantity)
	}
}

func TestAddItemRefreshesSnapshotFields(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, Name: "Ava", UnitPrice: priceOf("189.99"), Quantity: 1})
	c.AddItem(Item{ProductID: 1, Name: "Ava (renamed)", UnitPrice: priceOf("199.99"), Quantity: 1})

	if c.Items[0].Name != "Ava (renamed)" {
		t.Fatalf("expected refreshed name, got %q", c.Items[0].Name)
	}
	if !c.Items[0].UnitPrice.Equal(priceOf("199.99")) {
		t.Fatalf("expected refreshed price, got %s", c.Items[0].UnitPrice)
	}
	if c.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Items[0].Quantity)
	}
}

func TestAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, Quantity: 0})
	c.AddItem(Item{ProductID: 2, Quantity: -1})
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", len(c.Items))
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, UnitPrice: priceOf("50"), Quantity: 2})
	c.AddItem(Item{ProductID: 2, UnitPrice: priceOf("75"), Quantity: 1})

	c.UpdateQuantity(1, 0)
	if len(c.Items) != 1 || c.Items[0].ProductID != 2 {
		t.Fatalf("expected only product 2 to remain")
	}

	c.UpdateQuantity(2, -5)
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart after negative quantity update")
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, UnitPrice: priceOf("50"), Quantity: 2})
	c.UpdateQuantity(99, 4)
	if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
		t.Fatalf("expected cart unchanged")
	}
}

func TestTotalAccumulatesWithoutIntermediateRounding(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, UnitPrice: priceOf("0.105"), Quantity: 3})
	c.AddItem(Item{ProductID: 2, UnitPrice: priceOf("19.99"), Quantity: 2})

	want := priceOf("0.315").Add(priceOf("39.98"))
	if !c.Total().Equal(want) {
		t.Fatalf("Total = %s, want %s", c.Total(), want)
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, UnitPrice: priceOf("10"), Quantity: 3})
	c.AddItem(Item{ProductID: 2, UnitPrice: priceOf("20"), Quantity: 2})
	if got := c.ItemCount(); got != 5 {
		t.Fatalf("ItemCount = %d, want 5", got)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	c := New("s1")
	c.AddItem(Item{ProductID: 1, UnitPrice: priceOf("10"), Quantity: 1})
	c.Clear()
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart after Clear")
	}
	if !c.Total().Equal(decimal.Zero) {
		t.Fatalf("expected zero total after Clear")
	}
}

func TestMemoryStoreRoundTripAndIsolation(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	a := New("session-a")
	a.AddItem(Item{ProductID: 1, UnitPrice: priceOf("10"), Quantity: 1})
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "session-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || len(got.Items) != 1 {
		t.Fatalf("expected stored cart with 1 line")
	}

	other, err := store.Get(ctx, "session-b")
	if err != nil {
		t.Fatalf("Get other: %v", err)
	}
	if other != nil {
		t.Fatalf("expected nil cart for unknown session")
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	a := New("session-a")
	a.AddItem(Item{ProductID: 1, UnitPrice: priceOf("10"), Quantity: 1})
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	first, _ := store.Get(ctx, "session-a")
	first.Items[0].Quantity = 99

	second, _ := store.Get(ctx, "session-a")
	if second.Items[0].Quantity != 1 {
		t.Fatalf("stored cart mutated through returned copy")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	a := New("session-a")
	a.AddItem(Item{ProductID: 1, UnitPrice: priceOf("10"), Quantity: 1})
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	got, err := store.Get(ctx, "session-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired cart to be gone")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	a := New("session-a")
	a.AddItem(Item{ProductID: 1, UnitPrice: priceOf("10"), Quantity: 1})
	_ = store.Save(ctx, a)
	if err := store.Delete(ctx, "session-a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ := store.Get(ctx, "session-a")
	if got != nil {
		t.Fatalf("expected cart removed")
	}
}

func TestKeyMutexSerializesSameKey(t *testing.T) {
	var m KeyMutex
	counter := 0
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func() {
			unlock := m.Lock("same")
			counter++
			unlock()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
}
