package postgres

import (
	"errors"
	"testing"

	"github.com/brightcomgroup/storefront/internal/domain"
)

func TestTaxRepository_PostgresPutGetAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewTaxRepository(store)

	record := domain.TaxRecord{
		ID:            "prod-1",
		Title:         "Water Purifier",
		Brand:         "Aqua",
		Category:      "appliances",
		ProductCost:   1000,
		GSTPercentage: 18,
	}
	if err := repo.Put(record); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(domain.TaxRecord{ID: "prod-2", Title: "Filter", ProductCost: 500, GSTPercentage: 5}); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := repo.Get("prod-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != record {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Повторный Put перезаписывает запись, не создавая дубликат.
	record.GSTPercentage = 12
	if err := repo.Put(record); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = repo.Get("prod-1")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got.GSTPercentage != 12 {
		t.Fatalf("expected overwritten gst percentage 12, got %v", got.GSTPercentage)
	}

	listed, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != "prod-1" || listed[1].ID != "prod-2" {
		t.Fatalf("expected two records sorted by id, got %+v", listed)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrTaxRecordNotFound) {
		t.Fatalf("expected ErrTaxRecordNotFound, got %v", err)
	}
	if err := repo.Put(domain.TaxRecord{}); !errors.Is(err, domain.ErrProductIDRequired) {
		t.Fatalf("expected ErrProductIDRequired, got %v", err)
	}
}
