package domain

// Action — действие, доступное покупателю для заказа.
type Action string

const (
	// ActionCancel — отмена заказа с указанием причины.
	ActionCancel Action = "cancel"
	// ActionRate — переход к оценке доставленного товара.
	ActionRate Action = "rate"
	// ActionDownloadInvoice — выгрузка налогового счёта-фактуры.
	ActionDownloadInvoice Action = "download-invoice"
)

// ActionSet — множество допустимых действий для одного заказа.
type ActionSet []Action

// Contains сообщает, входит ли действие в множество.
func (s ActionSet) Contains(action Action) bool {
	for _, a := range s {
		if a == action {
			return true
		}
	}
	return false
}

// ActionsFor — чистая функция политики действий: статус -> допустимые действия.
// Вычисляется заново при каждом отображении списка; результат не кэшируется,
// чтобы не отстать от изменившегося статуса.
//
//	delivering -> cancel
//	delivered  -> rate, download-invoice
//	прочие     -> ничего
func ActionsFor(status OrderStatus) ActionSet {
	switch status {
	case OrderStatusDelivering:
		return ActionSet{ActionCancel}
	case OrderStatusDelivered:
		return ActionSet{ActionRate, ActionDownloadInvoice}
	default:
		return nil
	}
}
