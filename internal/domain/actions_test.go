package domain_test

import (
	"testing"

	"github.com/brightcomgroup/storefront/internal/domain"
)

func TestActionsFor(t *testing.T) {
	cases := []struct {
		name   string
		status domain.OrderStatus
		want   []domain.Action
	}{
		{
			name:   "delivering allows cancel only",
			status: domain.OrderStatusDelivering,
			want:   []domain.Action{domain.ActionCancel},
		},
		{
			name:   "delivered allows rate and invoice download",
			status: domain.OrderStatusDelivered,
			want:   []domain.Action{domain.ActionRate, domain.ActionDownloadInvoice},
		},
		{
			name:   "cancelled allows nothing",
			status: domain.OrderStatusCancelled,
			want:   nil,
		},
		{
			name:   "unknown status allows nothing",
			status: domain.OrderStatus("returned"),
			want:   nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ActionsFor(tc.status)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i, action := range tc.want {
				if got[i] != action {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestActionSetContains(t *testing.T) {
	set := domain.ActionsFor(domain.OrderStatusDelivered)
	if !set.Contains(domain.ActionDownloadInvoice) {
		t.Fatal("expected download-invoice to be allowed for delivered orders")
	}
	if set.Contains(domain.ActionCancel) {
		t.Fatal("cancel must not be allowed for delivered orders")
	}
}
