package domain_test

import (
	"testing"
	"time"

	"github.com/brightcomgroup/storefront/internal/domain"
)

// helper для создания валидного заказа в доставке.
func makeOrder() domain.Order {
	return domain.Order{
		OrderID:   "O1",
		ProductID: "P1",
		Title:     "Cotton Shirt",
		Address:   "1234 Street, City, State",
		ImagePath: "images/p1.jpg",
		Price:     1000,
		Quantity:  1,
		Status:    domain.OrderStatusDelivering,
		CreatedAt: time.Now().UTC(),
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no order id",
			mut: func(o *domain.Order) {
				o.OrderID = ""
			},
		},
		{
			name: "no product id",
			mut: func(o *domain.Order) {
				o.ProductID = ""
			},
		},
		{
			name: "quantity invalid",
			mut: func(o *domain.Order) {
				o.Quantity = 0
			},
		},
		{
			name: "negative price",
			mut: func(o *domain.Order) {
				o.Price = -1
			},
		},
		{
			name: "unknown status",
			mut: func(o *domain.Order) {
				o.Status = "returned"
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestOrderCancellable(t *testing.T) {
	order := makeOrder()
	if !order.Cancellable() {
		t.Fatal("delivering order must be cancellable")
	}

	order.Status = domain.OrderStatusDelivered
	if order.Cancellable() {
		t.Fatal("delivered order must not be cancellable")
	}

	order.Status = domain.OrderStatusCancelled
	if order.Cancellable() {
		t.Fatal("cancelled order must not be cancellable")
	}
}
