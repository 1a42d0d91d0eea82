package session

// CancellationState — состояние диалога отмены заказа.
type CancellationState string

const (
	// CancellationIdle — диалог закрыт, отмена не идёт.
	CancellationIdle CancellationState = "idle"
	// CancellationReasonEntry — диалог открыт, пользователь вводит причину.
	CancellationReasonEntry CancellationState = "reason_entry"
	// CancellationSubmitting — запрос отмены отправлен и ещё не завершился.
	CancellationSubmitting CancellationState = "submitting"
)

// Cancellation — снимок текущего состояния диалога отмены.
type Cancellation struct {
	State   CancellationState
	OrderID string
	Reason  string
}

// Active сообщает, открыт ли диалог отмены.
func (c Cancellation) Active() bool {
	return c.State != CancellationIdle
}
