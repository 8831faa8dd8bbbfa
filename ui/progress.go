package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JasperRosales/aircraft-system-fe/metrics"
)

// UsageBar renders a linear wear bar colored by bucket, e.g.
// "████████░░░░░░░░ 52.0%". percent is clamped to [0,100] for the bar but
// printed as-is so over-limit parts read honestly.
func UsageBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	clamped := percent
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	filled := int(clamped / 100 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf(" %.1f%%", percent)

	return BucketStyle(percent).Render(bar) + DimStyle.Render(label)
}

// RatioBar is the overview variant: a bar sized by share-of-total with the
// rounded percentage, in a fixed color.
func RatioBar(pct int, width int, style lipgloss.Style) string {
	if width < 4 {
		width = 4
	}
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return style.Render(bar) + DimStyle.Render(fmt.Sprintf(" %d%%", pct))
}

// BucketStyle picks the wear color for a usage percent. The thresholds live
// in the metrics package so every panel agrees on them.
func BucketStyle(percent float64) lipgloss.Style {
	switch metrics.Classify(percent) {
	case metrics.Critical:
		return CriticalStyle
	case metrics.Warning:
		return WarningStyle
	default:
		return GoodStyle
	}
}
