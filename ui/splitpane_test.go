package ui

import (
	"strings"
	"testing"
)

func TestRenderSplitPaneGeometry(t *testing.T) {
	out := RenderSplitPane("left", "right", 22, 3, 50)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// margin (2) + left pane at 50% of 20 (10), then the border.
	for i, line := range lines {
		r := []rune(line)
		if len(r) < 13 || r[12] != '│' {
			t.Errorf("line %d: border not at column 12: %q", i, line)
		}
	}
	if !strings.HasPrefix(lines[0], "  left") {
		t.Errorf("left content misplaced: %q", lines[0])
	}
	if !strings.Contains(lines[0], "│ right") {
		t.Errorf("right content misplaced: %q", lines[0])
	}
}

func TestRenderSplitPaneRatioFallback(t *testing.T) {
	def := RenderSplitPane("l", "r", 30, 2, 40)
	if got := RenderSplitPane("l", "r", 30, 2, 0); got != def {
		t.Error("out-of-range ratio should fall back to the default split")
	}
	if got := RenderSplitPane("l", "r", 30, 2, 100); got != def {
		t.Error("ratio of 100 should fall back to the default split")
	}
}

func TestFitHeight(t *testing.T) {
	if got := FitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Errorf("trim: got %q", got)
	}
	if got := FitHeight("a", 3); got != "a\n\n" {
		t.Errorf("pad: got %q", got)
	}
}
