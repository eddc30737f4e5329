package ui

import (
	"time"

	"github.com/anomredux/rxcalc/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

const notificationTTL = 5 * time.Second

type Notification struct {
	Message   string
	IsError   bool
	CreatedAt time.Time
}

type NotificationManager struct {
	active *Notification
	now    func() time.Time
}

func NewNotificationManager() *NotificationManager {
	return &NotificationManager{now: time.Now}
}

// SetMessage shows a transient informational notification.
func (nm *NotificationManager) SetMessage(msg string) {
	nm.active = &Notification{Message: msg, CreatedAt: nm.now()}
}

// SetError shows a transient validation or save error.
func (nm *NotificationManager) SetError(msg string) {
	nm.active = &Notification{Message: msg, IsError: true, CreatedAt: nm.now()}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil || nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.Active() == nil {
		nm.active = nil
	}
}

func (nm *NotificationManager) Render(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}
	style := theme.SuccessStyle
	prefix := "✅ "
	if n.IsError {
		style = theme.ErrorStyle
		prefix = "❌ "
	}
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(style.Render(prefix + n.Message))
}
