package client

import "fmt"

// FetchError сигнализирует о сбое чтения списка (заказы или справочник налогов).
// Вызывающая сторона логирует его и сохраняет предыдущее состояние; повторов нет.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CancelError сигнализирует о сбое смены статуса заказа.
// Workflow возвращается к вводу причины; повтор — только по инициативе пользователя.
type CancelError struct {
	OrderID string
	Err     error
}

func (e *CancelError) Error() string {
	return fmt.Sprintf("cancel order %s: %v", e.OrderID, e.Err)
}

func (e *CancelError) Unwrap() error { return e.Err }
