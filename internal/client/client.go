package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/brightcomgroup/storefront/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client обращается к сервису заказов и справочнику налоговых ставок по HTTP.
// Все ошибки удалённых вызовов типизированы (FetchError/CancelError) и
// перехватываются вызывающей стороной; клиент сам повторов не делает.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Entry
}

// New создаёт клиент с базовым адресом сервиса.
func New(baseURL string, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.New().WithField("component", "storefront-client")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// FetchOrders возвращает все заказы пользователя.
func (c *Client) FetchOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, &FetchError{Endpoint: "/userorders", Err: domain.ErrUserIDRequired}
	}

	endpoint := fmt.Sprintf("%s/userorders?userId=%s", c.baseURL, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: "/userorders", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: "/userorders", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Endpoint: "/userorders", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payloads []orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, &FetchError{Endpoint: "/userorders", Err: fmt.Errorf("decode response: %w", err)}
	}

	orders := make([]domain.Order, 0, len(payloads))
	for _, p := range payloads {
		order := p.toDomain()
		if errs := order.ValidateInvariants(); len(errs) > 0 {
			// Битые записи отбрасываем на границе, не роняя весь список.
			c.logger.WithFields(log.Fields{
				"order_id": p.OrderID,
				"problems": errs,
			}).Warn("skipping malformed order payload")
			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// CancelOrder отправляет смену статуса на cancelled с указанной причиной.
func (c *Client) CancelOrder(ctx context.Context, orderID, reason string) error {
	if orderID == "" {
		return &CancelError{OrderID: orderID, Err: domain.ErrOrderIDRequired}
	}

	body, err := json.Marshal(cancelPayload{
		Status:             string(domain.OrderStatusCancelled),
		CancellationReason: reason,
	})
	if err != nil {
		return &CancelError{OrderID: orderID, Err: err}
	}

	endpoint := fmt.Sprintf("%s/cancel/%s", c.baseURL, url.PathEscape(orderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return &CancelError{OrderID: orderID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &CancelError{OrderID: orderID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &CancelError{OrderID: orderID, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return nil
}

// FetchTaxRecords возвращает весь справочник налоговых ставок без фильтрации.
func (c *Client) FetchTaxRecords(ctx context.Context) ([]domain.TaxRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gstdetails", nil)
	if err != nil {
		return nil, &FetchError{Endpoint: "/gstdetails", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: "/gstdetails", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Endpoint: "/gstdetails", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payloads []taxPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, &FetchError{Endpoint: "/gstdetails", Err: fmt.Errorf("decode response: %w", err)}
	}

	records := make([]domain.TaxRecord, 0, len(payloads))
	for _, p := range payloads {
		record := p.toDomain()
		if errs := record.ValidateInvariants(); len(errs) > 0 {
			c.logger.WithFields(log.Fields{
				"product_id": p.ID,
				"problems":   errs,
			}).Warn("skipping malformed tax payload")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
