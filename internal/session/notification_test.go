package session

import (
	"testing"
	"time"
)

func TestNotificationArmAndAutoHide(t *testing.T) {
	n := NewNotification()
	if n.Visible() {
		t.Fatal("new notification must start hidden")
	}

	n.Arm(30 * time.Millisecond)
	if !n.Visible() {
		t.Fatal("notification must be visible right after Arm")
	}

	time.Sleep(60 * time.Millisecond)
	if n.Visible() {
		t.Fatal("notification must hide after its duration")
	}
}

func TestNotificationRearmResetsTimer(t *testing.T) {
	n := NewNotification()

	n.Arm(50 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	n.Arm(50 * time.Millisecond)

	// Старый таймер уже истёк бы здесь; повторный Arm должен был его сбросить.
	time.Sleep(30 * time.Millisecond)
	if !n.Visible() {
		t.Fatal("re-arming must restart the timer from zero")
	}

	time.Sleep(40 * time.Millisecond)
	if n.Visible() {
		t.Fatal("notification must hide after the re-armed duration")
	}
}

func TestNotificationStop(t *testing.T) {
	n := NewNotification()

	n.Arm(time.Hour)
	n.Stop()
	if n.Visible() {
		t.Fatal("Stop must hide the notification immediately")
	}

	// Stop на скрытом уведомлении безопасен.
	n.Stop()
}
