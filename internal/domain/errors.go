package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order_id is required")
	// Ошибка отсутствующего идентификатора товара.
	ErrProductIDRequired = errors.New("product_id is required")
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserIDRequired = errors.New("user_id is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrQuantityInvalid = errors.New("quantity must be greater than zero")
	// Ошибка отрицательной цены.
	ErrPriceNegative = errors.New("price must be non-negative")
	// Ошибка неизвестного статуса заказа.
	ErrStatusUnknown = errors.New("order status is unknown")
	// Ошибка ставки налога вне диапазона 0–100.
	ErrGSTPercentageInvalid = errors.New("gst_percentage must be between 0 and 100")
	// ErrOrderExists — попытка создать заказ с уже занятым идентификатором.
	ErrOrderExists = errors.New("order already exists")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrTaxRecordNotFound возвращается, если налоговая запись отсутствует.
	ErrTaxRecordNotFound = errors.New("tax record not found")
	// ErrOrderNotCancellable — статус заказа не допускает отмену.
	ErrOrderNotCancellable = errors.New("order is not cancellable in its current status")
)

// IsNotFound проверяет, является ли ошибка отсутствием заказа или налоговой записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrTaxRecordNotFound)
}
