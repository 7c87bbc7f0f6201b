package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/lightledger/internal/analysis"
)

// Yuan formats a currency amount with the ¥ sign, trimming trailing zeros.
func Yuan(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return "¥" + s
}

// Bar renders a horizontal percentage bar of the given width in the given
// color. Percent is clamped to [0, 100].
func Bar(percent float64, width int, color string) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	fillStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return fillStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", width-filled))
}

// StatusStyle picks the style matching a budget status.
func StatusStyle(status analysis.Status) lipgloss.Style {
	switch status {
	case analysis.StatusOver:
		return ErrorStyle
	case analysis.StatusLow:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// StatusLabel renders a short human label for a budget status.
func StatusLabel(status analysis.Status) string {
	switch status {
	case analysis.StatusOver:
		return StatusStyle(status).Render("over budget")
	case analysis.StatusLow:
		return StatusStyle(status).Render("running low")
	default:
		return StatusStyle(status).Render("on track")
	}
}
