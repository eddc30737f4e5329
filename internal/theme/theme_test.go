package theme

import (
	"strings"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	r, g, b := HexToRGB("#86bada")
	if r != 0x86 || g != 0xba || b != 0xda {
		t.Errorf("HexToRGB = %d,%d,%d", r, g, b)
	}
}

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		t    float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"same color", "#ff0000", "#ff0000", 0.5, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpColor(tt.from, tt.to, tt.t)
			if got != tt.want {
				t.Errorf("LerpColor(%s, %s, %f) = %s, want %s", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestTitle_PlainText(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	got := Title("PRESCRIPTION SUMMARY")
	want := strings.Repeat("=", RuleWidth) + "\n        PRESCRIPTION SUMMARY\n" + strings.Repeat("=", RuleWidth)
	if got != want {
		t.Errorf("Title =\n%s\nwant\n%s", got, want)
	}
}

func TestGradientText_Empty(t *testing.T) {
	if got := GradientText("", "#000000", "#ffffff"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
