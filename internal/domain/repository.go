package domain

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ошибку, если запись с таким ID уже существует.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(orderID string) (Order, error)
	// ListByUser возвращает заказы пользователя, отсортированные по убыванию created_at.
	// Сортировка стабильна: при равных метках сохраняется порядок вставки.
	ListByUser(userID string) ([]Order, error)
	// UpdateStatus переводит заказ в новый статус, фиксируя причину отмены.
	// Возвращает ErrOrderNotFound или ErrOrderNotCancellable.
	UpdateStatus(orderID string, status OrderStatus, reason string) error
}

// TaxRepository описывает хранилище справочника налоговых ставок.
type TaxRepository interface {
	// Put сохраняет или перезаписывает запись; на товар существует не более одной.
	Put(record TaxRecord) error
	// Get возвращает запись по идентификатору товара или ErrTaxRecordNotFound.
	Get(productID string) (TaxRecord, error)
	// List возвращает весь справочник без фильтрации.
	List() ([]TaxRecord, error)
}
