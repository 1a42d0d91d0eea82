package session

import (
	"sync"
	"time"
)

// DefaultNotificationDuration — время показа одноразового уведомления.
const DefaultNotificationDuration = 2000 * time.Millisecond

// Notification — одноразовое уведомление с таймером автоскрытия.
// Повторный вызов Arm перезапускает таймер с нуля.
type Notification struct {
	mu         sync.Mutex
	visible    bool
	timer      *time.Timer
	generation uint64
}

// NewNotification создаёт скрытое уведомление.
func NewNotification() *Notification {
	return &Notification{}
}

// Arm показывает уведомление и планирует его скрытие через duration.
// Уже запущенный таймер останавливается и заменяется новым.
func (n *Notification) Arm(duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	n.visible = true

	// Поколение защищает от срабатывания уже остановленного таймера,
	// успевшего запустить свой колбэк до Stop.
	generation := n.generation
	n.timer = time.AfterFunc(duration, func() { n.hide(generation) })
}

func (n *Notification) hide(generation uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if generation != n.generation {
		return
	}
	n.visible = false
	n.timer = nil
}

// Visible сообщает, показано ли уведомление в данный момент.
func (n *Notification) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// Stop останавливает таймер и скрывает уведомление немедленно.
func (n *Notification) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.generation++
	n.visible = false
}
