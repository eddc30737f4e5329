package ui

import (
	"testing"
	"time"
)

func TestNotificationManager_Expires(t *testing.T) {
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	nm := NewNotificationManager()
	nm.now = func() time.Time { return now }

	nm.SetError("bad input")
	if n := nm.Active(); n == nil || !n.IsError {
		t.Fatalf("expected active error, got %+v", n)
	}

	now = now.Add(6 * time.Second)
	nm.Expire()
	if nm.Active() != nil {
		t.Error("notification should have expired")
	}
	if nm.Render(40) != "" {
		t.Error("expired notification should render empty")
	}
}
