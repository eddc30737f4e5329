package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatusBar_Render(t *testing.T) {
	out := StatusBar{Width: 40, Count: 2, Total: decimal.RequireFromString("19.5")}.Render()
	if !strings.Contains(out, "2 in session") {
		t.Errorf("missing count: %q", out)
	}
	if !strings.Contains(out, "$19.50") {
		t.Errorf("missing total: %q", out)
	}
}
