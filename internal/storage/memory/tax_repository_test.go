package memory

import (
	"errors"
	"testing"

	"github.com/brightcomgroup/storefront/internal/domain"
)

func TestTaxRepository_PutAndGet(t *testing.T) {
	repo := NewTaxRepository()

	record := domain.TaxRecord{ID: "P1", Title: "Cotton Shirt", Brand: "Acme", Category: "Men's Fashion", ProductCost: 1000, GSTPercentage: 18}
	if err := repo.Put(record); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := repo.Get("P1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.GSTAmount() != 180 {
		t.Fatalf("expected gst amount 180, got %v", got.GSTAmount())
	}
}

func TestTaxRepository_PutOverwrites(t *testing.T) {
	repo := NewTaxRepository()

	if err := repo.Put(domain.TaxRecord{ID: "P1", ProductCost: 1000, GSTPercentage: 18}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	// Не более одной записи на товар: повторный Put перезаписывает.
	if err := repo.Put(domain.TaxRecord{ID: "P1", ProductCost: 1000, GSTPercentage: 12}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	records, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single record, got %d", len(records))
	}
	if records[0].GSTPercentage != 12 {
		t.Fatalf("expected overwritten percentage 12, got %v", records[0].GSTPercentage)
	}
}

func TestTaxRepository_GetMissing(t *testing.T) {
	repo := NewTaxRepository()

	_, err := repo.Get("P9")
	if !errors.Is(err, domain.ErrTaxRecordNotFound) {
		t.Fatalf("expected ErrTaxRecordNotFound, got %v", err)
	}
}

func TestTaxRepository_PutRequiresID(t *testing.T) {
	repo := NewTaxRepository()

	err := repo.Put(domain.TaxRecord{ProductCost: 100, GSTPercentage: 5})
	if !errors.Is(err, domain.ErrProductIDRequired) {
		t.Fatalf("expected ErrProductIDRequired, got %v", err)
	}
}
