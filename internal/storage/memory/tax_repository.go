package memory

import (
	"sort"
	"sync"

	"github.com/brightcomgroup/storefront/internal/domain"
)

// taxRepositoryInMemory — in-memory реализация справочника налоговых ставок.
type taxRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.TaxRecord
}

// NewTaxRepository возвращает in-memory справочник для локальной разработки и тестов.
func NewTaxRepository() domain.TaxRepository {
	return &taxRepositoryInMemory{
		items: make(map[string]domain.TaxRecord),
	}
}

// Put сохраняет запись; на товар существует не более одной.
func (r *taxRepositoryInMemory) Put(record domain.TaxRecord) error {
	if record.ID == "" {
		return domain.ErrProductIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[record.ID] = record
	return nil
}

// Get возвращает запись по идентификатору товара.
func (r *taxRepositoryInMemory) Get(productID string) (domain.TaxRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[productID]
	if !ok {
		return domain.TaxRecord{}, domain.ErrTaxRecordNotFound
	}
	return record, nil
}

// List возвращает весь справочник, отсортированный по идентификатору товара.
func (r *taxRepositoryInMemory) List() ([]domain.TaxRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.TaxRecord, 0, len(r.items))
	for _, record := range r.items {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

var _ domain.TaxRepository = (*taxRepositoryInMemory)(nil)
