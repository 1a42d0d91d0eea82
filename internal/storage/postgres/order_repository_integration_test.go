package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/brightcomgroup/storefront/internal/domain"
)

func sampleOrder(orderID, userID string, createdAt time.Time) domain.Order {
	return domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		ProductID: "prod-" + orderID,
		Title:     "Water Purifier",
		Address:   "12 MG Road, Bengaluru",
		ImagePath: "/images/" + orderID + ".jpg",
		Price:     1180,
		Quantity:  1,
		Status:    domain.OrderStatusDelivering,
		CreatedAt: createdAt,
	}
}

func TestOrderRepository_PostgresCreateGetAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	order1 := sampleOrder("order-1", "user-1", now.Add(-2*time.Minute))
	order2 := sampleOrder("order-2", "user-1", now.Add(-time.Minute))
	other := sampleOrder("order-3", "user-2", now)

	for _, order := range []domain.Order{order1, order2, other} {
		if err := repo.Create(order); err != nil {
			t.Fatalf("create %s: %v", order.OrderID, err)
		}
	}

	if err := repo.Create(order1); !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("duplicate create: expected ErrOrderExists, got %v", err)
	}

	got, err := repo.Get(order1.OrderID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.OrderID != order1.OrderID || got.UserID != order1.UserID || got.Status != order1.Status {
		t.Fatalf("unexpected order payload: %+v", got)
	}

	listed, err := repo.ListByUser("user-1")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 orders for user-1, got %d", len(listed))
	}
	if listed[0].OrderID != "order-2" || listed[1].OrderID != "order-1" {
		t.Fatalf("expected newest-first order, got %s then %s", listed[0].OrderID, listed[1].OrderID)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_PostgresStableOrderOnEqualTimestamps(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	createdAt := time.Now().UTC().Round(time.Microsecond)
	for _, id := range []string{"tie-a", "tie-b", "tie-c"} {
		if err := repo.Create(sampleOrder(id, "user-1", createdAt)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	listed, err := repo.ListByUser("user-1")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	want := []string{"tie-a", "tie-b", "tie-c"}
	if len(listed) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(listed))
	}
	for i, id := range want {
		if listed[i].OrderID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, listed[i].OrderID)
		}
	}
}

func TestOrderRepository_PostgresUpdateStatus(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	delivering := sampleOrder("order-cancel", "user-1", now)
	delivered := sampleOrder("order-done", "user-1", now)
	delivered.Status = domain.OrderStatusDelivered

	if err := repo.Create(delivering); err != nil {
		t.Fatalf("create delivering: %v", err)
	}
	if err := repo.Create(delivered); err != nil {
		t.Fatalf("create delivered: %v", err)
	}

	if err := repo.UpdateStatus("order-cancel", domain.OrderStatusCancelled, "wrong size"); err != nil {
		t.Fatalf("cancel delivering order: %v", err)
	}
	got, err := repo.Get("order-cancel")
	if err != nil {
		t.Fatalf("get cancelled order: %v", err)
	}
	if got.Status != domain.OrderStatusCancelled || got.CancellationReason != "wrong size" {
		t.Fatalf("expected cancelled with reason, got %+v", got)
	}

	if err := repo.UpdateStatus("order-done", domain.OrderStatusCancelled, ""); !errors.Is(err, domain.ErrOrderNotCancellable) {
		t.Fatalf("cancel delivered order: expected ErrOrderNotCancellable, got %v", err)
	}
	if err := repo.UpdateStatus("missing", domain.OrderStatusCancelled, ""); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("cancel missing order: expected ErrOrderNotFound, got %v", err)
	}
}
