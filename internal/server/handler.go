package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/cache"
	"github.com/brightcomgroup/storefront/internal/domain"
	"github.com/brightcomgroup/storefront/internal/invoice"
	"github.com/brightcomgroup/storefront/internal/metrics"
)

// EventPublisher публикует события жизненного цикла заказов.
type EventPublisher interface {
	PublishOrderCancelled(orderID, userID, reason string) error
}

// Handler обрабатывает HTTP-запросы сервиса заказов витрины.
type Handler struct {
	orders    domain.OrderRepository
	taxes     domain.TaxRepository
	generator *invoice.Generator
	publisher EventPublisher      // nil: публикация событий отключена
	taxCache  *cache.TaxCache     // nil: кэш отключён
	metrics   *metrics.StorefrontMetrics
	logger    *log.Entry
}

// NewHandler создаёт обработчик поверх хранилищ заказов и налогового справочника.
// publisher и taxCache опциональны и могут быть nil.
func NewHandler(
	orders domain.OrderRepository,
	taxes domain.TaxRepository,
	generator *invoice.Generator,
	publisher EventPublisher,
	taxCache *cache.TaxCache,
	serverMetrics *metrics.StorefrontMetrics,
	logger *log.Logger,
) *Handler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if generator == nil {
		generator = invoice.NewGenerator(logger.WithField("component", "invoice"))
	}

	return &Handler{
		orders:    orders,
		taxes:     taxes,
		generator: generator,
		publisher: publisher,
		taxCache:  taxCache,
		metrics:   serverMetrics,
		logger:    logger.WithField("component", "http-handler"),
	}
}

// ListUserOrders возвращает заказы пользователя по убыванию даты создания.
func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id_required", "userId query parameter is required")
		return
	}

	orders, err := h.orders.ListByUser(userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("failed to list orders")
		writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	h.metrics.RecordOrdersFetched()
	writeJSON(w, http.StatusOK, mapOrdersToResponse(orders))
}

// CancelOrder переводит заказ в статус cancelled, фиксируя причину.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Status != string(domain.OrderStatusCancelled) {
		writeError(w, http.StatusBadRequest, "invalid_status", "only cancelled status is accepted")
		return
	}

	if err := h.orders.UpdateStatus(orderID, domain.OrderStatusCancelled, req.CancellationReason); err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "order_not_found", "")
		case errors.Is(err, domain.ErrOrderNotCancellable):
			writeError(w, http.StatusConflict, "order_not_cancellable", "")
		default:
			h.logger.WithError(err).WithField("order_id", orderID).Error("failed to cancel order")
			writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
		}
		h.metrics.RecordCancellationFailed()
		return
	}

	order, err := h.orders.Get(orderID)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", orderID).Error("failed to load cancelled order")
		writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	h.metrics.RecordCancellation()
	h.logger.WithFields(log.Fields{
		"order_id": orderID,
		"user_id":  order.UserID,
	}).Info("order cancelled")

	// Публикация события не должна ломать уже выполненную отмену.
	if h.publisher != nil {
		if err := h.publisher.PublishOrderCancelled(order.OrderID, order.UserID, order.CancellationReason); err != nil {
			h.logger.WithError(err).WithField("order_id", orderID).Error("failed to publish cancellation event")
		}
	}

	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

// ListTaxRecords возвращает налоговый справочник, используя Redis-кэш при наличии.
func (h *Handler) ListTaxRecords(w http.ResponseWriter, r *http.Request) {
	if records, ok := h.taxCache.Get(r.Context()); ok {
		writeJSON(w, http.StatusOK, mapTaxRecordsToResponse(records))
		return
	}

	records, err := h.taxes.List()
	if err != nil {
		h.logger.WithError(err).Error("failed to list tax records")
		writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	h.taxCache.Set(r.Context(), records)
	writeJSON(w, http.StatusOK, mapTaxRecordsToResponse(records))
}

// DownloadInvoice отдаёт PDF-счёт для заказа. Счёт доступен только для
// доставленных заказов, иначе 409. Если налоговой записи для товара нет,
// счёт недоступен и возвращается 404.
func (h *Handler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	order, err := h.orders.Get(orderID)
	if err != nil {
		if domain.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "order_not_found", "")
			return
		}
		h.logger.WithError(err).WithField("order_id", orderID).Error("failed to load order for invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	if !domain.ActionsFor(order.Status).Contains(domain.ActionDownloadInvoice) {
		writeError(w, http.StatusConflict, "invoice_not_allowed", "invoice is only available for delivered orders")
		return
	}

	records, err := h.taxes.List()
	if err != nil {
		h.logger.WithError(err).Error("failed to list tax records for invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	started := time.Now()
	document, err := h.generator.Generate(order, records)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", orderID).Error("failed to render invoice")
		writeError(w, http.StatusInternalServerError, "invoice_render_error", err.Error())
		return
	}
	if document == nil {
		h.metrics.RecordInvoiceMissingTax()
		writeError(w, http.StatusNotFound, "invoice_not_available", "no tax record for the ordered product")
		return
	}

	h.metrics.RecordInvoiceGenerated()
	h.metrics.RecordInvoiceRenderDuration(time.Since(started))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+document.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document.Data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{
		Error:   code,
		Message: msg,
	})
}
