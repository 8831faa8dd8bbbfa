package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderSplitPane lays out a dashboard as a left info pane and a right
// roster pane separated by a vertical border. leftPercent is the left
// pane's share of the width; values outside (0,100) fall back to 40.
func RenderSplitPane(left, right string, totalWidth, totalHeight, leftPercent int) string {
	const leftMargin = 2

	if leftPercent <= 0 || leftPercent >= 100 {
		leftPercent = 40
	}
	leftWidth := (totalWidth - leftMargin) * leftPercent / 100
	rightWidth := totalWidth - leftMargin - leftWidth - 3 // border column

	leftLines := strings.Split(FitHeight(left, totalHeight), "\n")
	rightLines := strings.Split(FitHeight(right, totalHeight), "\n")

	margin := strings.Repeat(" ", leftMargin)

	var result []string
	for i := 0; i < totalHeight; i++ {
		leftLine := ""
		rightLine := ""
		if i < len(leftLines) {
			leftLine = leftLines[i]
		}
		if i < len(rightLines) {
			rightLine = rightLines[i]
		}
		result = append(result, margin+padToWidth(leftLine, leftWidth)+"│ "+padToWidth(rightLine, rightWidth-2))
	}

	return strings.Join(result, "\n")
}

// padToWidth pads with spaces to the target width, measuring through
// lipgloss so ANSI styling does not count.
func padToWidth(s string, width int) string {
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// FitHeight pads or trims content to an exact line count.
func FitHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) >= height {
		return strings.Join(lines[:height], "\n")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
