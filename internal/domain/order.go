package domain

import "time"

// OrderStatus описывает жизненный цикл заказа в витрине.
type OrderStatus string

const (
	// OrderStatusDelivering — заказ оплачен и находится в доставке.
	OrderStatusDelivering OrderStatus = "delivering"
	// OrderStatusDelivered — заказ доставлен покупателю.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён покупателем до доставки.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order представляет одну покупательскую позицию заказа.
// Статус авторитетен со стороны сервиса заказов: локально он не
// изобретается, кроме оптимистичного отображения во время отправки отмены.
type Order struct {
	// OrderID — непрозрачный идентификатор, уникальный для позиции.
	OrderID string
	// UserID — идентификатор покупателя, которому принадлежит заказ.
	UserID string
	// ProductID связывает позицию с каталогом и, через него, с налоговой записью.
	ProductID string
	// Title, Address, ImagePath — отображаемые строки.
	Title     string
	Address   string
	ImagePath string
	// Price — стоимость позиции, как её сохранил сервис заказов.
	Price float64
	// Quantity — положительное количество единиц.
	Quantity int32
	Status   OrderStatus
	// CancellationReason хранит причину, указанную при отмене (может быть пустой).
	CancellationReason string
	CreatedAt          time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.OrderID == "" {
		errs = append(errs, ErrOrderIDRequired)
	}
	if o.ProductID == "" {
		errs = append(errs, ErrProductIDRequired)
	}
	if o.Quantity <= 0 {
		errs = append(errs, ErrQuantityInvalid)
	}
	if o.Price < 0 {
		errs = append(errs, ErrPriceNegative)
	}
	switch o.Status {
	case OrderStatusDelivering, OrderStatusDelivered, OrderStatusCancelled:
	default:
		errs = append(errs, ErrStatusUnknown)
	}

	return errs
}

// Cancellable сообщает, допускает ли текущий статус отмену заказа.
func (o *Order) Cancellable() bool {
	return ActionsFor(o.Status).Contains(ActionCancel)
}
