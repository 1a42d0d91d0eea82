package memory

import (
	"sort"
	"sync"

	"github.com/brightcomgroup/storefront/internal/domain"
)

type orderRecord struct {
	order domain.Order
	// seq фиксирует порядок вставки для стабильной сортировки при равных created_at.
	seq int64
}

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]orderRecord
	seq   int64
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]orderRecord),
	}
}

// Create сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Create(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.OrderID]; exists {
		return domain.ErrOrderExists
	}
	r.seq++
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.items[order.OrderID] = orderRecord{order: order, seq: r.seq}
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(orderID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[orderID]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return record.order, nil
}

// ListByUser возвращает заказы, отсортированные по убыванию created_at.
// При равных метках сохраняется порядок вставки (стабильная сортировка).
func (r *orderRepositoryInMemory) ListByUser(userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]orderRecord, 0, len(r.items))
	for _, record := range r.items {
		if record.order.UserID != userID {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].order.CreatedAt.Equal(records[j].order.CreatedAt) {
			return records[i].order.CreatedAt.After(records[j].order.CreatedAt)
		}
		return records[i].seq < records[j].seq
	})

	result := make([]domain.Order, 0, len(records))
	for _, record := range records {
		result = append(result, record.order)
	}

	return result, nil
}

// UpdateStatus переводит заказ в новый статус, записывая причину отмены.
func (r *orderRepositoryInMemory) UpdateStatus(orderID string, status domain.OrderStatus, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if status == domain.OrderStatusCancelled && !record.order.Cancellable() {
		return domain.ErrOrderNotCancellable
	}

	record.order.Status = status
	if status == domain.OrderStatusCancelled {
		record.order.CancellationReason = reason
	}
	r.items[orderID] = record
	return nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
