package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/domain"
	"github.com/brightcomgroup/storefront/internal/invoice"
	"github.com/brightcomgroup/storefront/internal/metrics"
)

var (
	// ErrNoActiveCancellation возвращается при операциях над закрытым диалогом отмены.
	ErrNoActiveCancellation = errors.New("no active cancellation")

	// ErrSubmitInProgress возвращается, если отправка отмены уже идёт.
	ErrSubmitInProgress = errors.New("cancellation submit already in progress")
)

// OrderService — операции внешнего сервиса заказов, нужные сессии.
type OrderService interface {
	FetchOrders(ctx context.Context, userID string) ([]domain.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) error
}

// TaxService — чтение налогового справочника из внешнего сервиса.
type TaxService interface {
	FetchTaxRecords(ctx context.Context) ([]domain.TaxRecord, error)
}

// OrderRow — заказ вместе с множеством действий, допустимых для него.
type OrderRow struct {
	Order   domain.Order
	Actions domain.ActionSet
}

// Session владеет состоянием одного пользовательского сеанса витрины:
// списком заказов, налоговым справочником, диалогом отмены и уведомлением.
// Всё изменяемое состояние принадлежит экземпляру, глобальных переменных нет.
type Session struct {
	userID    string
	orders    OrderService
	taxes     TaxService
	generator *invoice.Generator
	metrics   *metrics.StorefrontMetrics
	logger    *log.Entry

	notifyDuration time.Duration
	notification   *Notification

	mu           sync.Mutex
	orderList    []domain.Order
	taxRecords   []domain.TaxRecord
	cancellation Cancellation
}

// New создаёт сеанс для указанного пользователя.
func New(userID string, orders OrderService, taxes TaxService, generator *invoice.Generator, sessionMetrics *metrics.StorefrontMetrics, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if generator == nil {
		generator = invoice.NewGenerator(logger.WithField("component", "invoice"))
	}

	return &Session{
		userID:         userID,
		orders:         orders,
		taxes:          taxes,
		generator:      generator,
		metrics:        sessionMetrics,
		logger:         logger.WithField("component", "session"),
		notifyDuration: DefaultNotificationDuration,
		notification:   NewNotification(),
		cancellation:   Cancellation{State: CancellationIdle},
	}
}

// UserID возвращает идентификатор пользователя сеанса.
func (s *Session) UserID() string {
	return s.userID
}

// Load загружает список заказов пользователя. При ошибке предыдущий
// список сохраняется без изменений, ошибка логируется и возвращается.
func (s *Session) Load(ctx context.Context) error {
	orders, err := s.orders.FetchOrders(ctx, s.userID)
	if err != nil {
		s.metrics.RecordFetchFailed()
		s.logger.WithError(err).WithField("user_id", s.userID).Warn("failed to fetch orders")
		return err
	}

	// Сервис уже отдаёт заказы по убыванию даты, но порядок — часть
	// контракта списка, поэтому сортируем ещё раз. Стабильная сортировка
	// сохраняет исходный порядок заказов с одинаковой датой.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	s.mu.Lock()
	s.orderList = orders
	s.mu.Unlock()

	s.metrics.RecordOrdersFetched()
	return nil
}

// LoadTaxRecords загружает налоговый справочник. Ошибка не затирает
// ранее загруженные записи.
func (s *Session) LoadTaxRecords(ctx context.Context) error {
	records, err := s.taxes.FetchTaxRecords(ctx)
	if err != nil {
		s.metrics.RecordFetchFailed()
		s.logger.WithError(err).Warn("failed to fetch tax records")
		return err
	}

	s.mu.Lock()
	s.taxRecords = records
	s.mu.Unlock()
	return nil
}

// Orders возвращает копию текущего списка заказов.
func (s *Session) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, len(s.orderList))
	copy(orders, s.orderList)
	return orders
}

// Rows возвращает список заказов вместе с пересчитанными действиями.
// Действия вычисляются при каждом вызове, а не хранятся.
func (s *Session) Rows() []OrderRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]OrderRow, len(s.orderList))
	for i, order := range s.orderList {
		rows[i] = OrderRow{Order: order, Actions: domain.ActionsFor(order.Status)}
	}
	return rows
}

// TaxRecords возвращает копию загруженного налогового справочника.
func (s *Session) TaxRecords() []domain.TaxRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.TaxRecord, len(s.taxRecords))
	copy(records, s.taxRecords)
	return records
}

// Cancellation возвращает снимок состояния диалога отмены.
func (s *Session) Cancellation() Cancellation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancellation
}

// Notification возвращает уведомление об успешной отмене.
func (s *Session) Notification() *Notification {
	return s.notification
}

// BeginCancellation открывает диалог отмены для заказа. Повторный вызов
// в состоянии ввода причины перенацеливает диалог и сбрасывает введённый
// текст. Во время отправки перенацеливание запрещено.
func (s *Session) BeginCancellation(orderID string) error {
	if orderID == "" {
		return domain.ErrOrderIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancellation.State == CancellationSubmitting {
		return ErrSubmitInProgress
	}

	s.cancellation = Cancellation{
		State:   CancellationReasonEntry,
		OrderID: orderID,
	}
	return nil
}

// UpdateReason сохраняет текст причины как есть. Пустая причина допустима.
func (s *Session) UpdateReason(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancellation.State != CancellationReasonEntry {
		return ErrNoActiveCancellation
	}
	s.cancellation.Reason = text
	return nil
}

// DismissCancellation закрывает диалог, отбрасывая причину и цель.
// Сервис заказов при этом не вызывается.
func (s *Session) DismissCancellation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancellation.State != CancellationReasonEntry {
		return
	}
	s.cancellation = Cancellation{State: CancellationIdle}
}

// SubmitCancellation отправляет отмену целевого заказа. При успехе диалог
// закрывается, список заказов перечитывается и показывается уведомление.
// При ошибке диалог возвращается в состояние ввода причины с сохранённым
// текстом. Повторный вызов во время отправки не выполняет ничего.
func (s *Session) SubmitCancellation(ctx context.Context) error {
	s.mu.Lock()
	if s.cancellation.State == CancellationSubmitting {
		s.mu.Unlock()
		return ErrSubmitInProgress
	}
	if s.cancellation.State != CancellationReasonEntry {
		s.mu.Unlock()
		return ErrNoActiveCancellation
	}
	orderID := s.cancellation.OrderID
	reason := s.cancellation.Reason
	s.cancellation.State = CancellationSubmitting
	s.mu.Unlock()

	if err := s.orders.CancelOrder(ctx, orderID, reason); err != nil {
		s.metrics.RecordCancellationFailed()
		s.logger.WithError(err).WithField("order_id", orderID).Error("failed to cancel order")

		s.mu.Lock()
		// Возврат к вводу причины, чтобы пользователь мог повторить
		// или закрыть диалог. Текст причины не теряется.
		s.cancellation = Cancellation{
			State:   CancellationReasonEntry,
			OrderID: orderID,
			Reason:  reason,
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.cancellation = Cancellation{State: CancellationIdle}
	s.mu.Unlock()

	s.metrics.RecordCancellation()
	s.logger.WithField("order_id", orderID).Info("order cancelled")

	if err := s.Load(ctx); err != nil {
		// Отмена уже прошла, поэтому неудачное обновление списка
		// не считается ошибкой операции.
		s.logger.WithError(err).Warn("failed to refresh orders after cancellation")
	}

	s.notification.Arm(s.notifyDuration)
	return nil
}

// GenerateInvoice строит PDF-счёт для заказа из текущего списка.
// Если налоговой записи для товара нет, возвращается (nil, nil).
func (s *Session) GenerateInvoice(orderID string) (*invoice.Document, error) {
	s.mu.Lock()
	var target *domain.Order
	for i := range s.orderList {
		if s.orderList[i].OrderID == orderID {
			target = &s.orderList[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil, domain.ErrOrderNotFound
	}
	order := *target
	records := make([]domain.TaxRecord, len(s.taxRecords))
	copy(records, s.taxRecords)
	s.mu.Unlock()

	started := time.Now()
	document, err := s.generator.Generate(order, records)
	if err != nil {
		return nil, err
	}
	if document == nil {
		s.metrics.RecordInvoiceMissingTax()
		return nil, nil
	}

	s.metrics.RecordInvoiceGenerated()
	s.metrics.RecordInvoiceRenderDuration(time.Since(started))
	return document, nil
}

// Close останавливает таймер уведомления. Сеанс после этого не используется.
func (s *Session) Close() {
	s.notification.Stop()
}
