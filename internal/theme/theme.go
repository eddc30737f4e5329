package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
	ColorMint     = lipgloss.Color("#a6dcb8")
)

// Text tones
var (
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// RuleWidth is the width of the "=" rules framing banners and summaries.
const RuleWidth = 60

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSkyBlue)

	MoneyStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorMint)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorMauve)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorLavender)
)

// SetColor turns ANSI colour output on or off for every style.
// With colour on, the profile detected from the terminal is restored.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Rule returns a muted line of "=" the full report width.
func Rule() string {
	return MutedStyle.Render(strings.Repeat("=", RuleWidth))
}

// Title renders an indented gradient heading framed by rules.
func Title(text string) string {
	return Rule() + "\n" +
		"        " + GradientText(text, string(ColorSkyBlue), string(ColorMauve)) + "\n" +
		Rule()
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20) // pre-allocate for ANSI escape overhead
	style := lipgloss.NewStyle().Bold(true)
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}
