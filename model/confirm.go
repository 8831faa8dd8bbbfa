package model

import (
	"strings"

	"github.com/JasperRosales/aircraft-system-fe/ui"
)

// confirmDialog is the destructive-action gate: explicit state the owning
// screen renders, resolved by enter or esc.
type confirmDialog struct {
	title   string
	detail  string
	pending bool
}

func newConfirmDialog(title, detail string) *confirmDialog {
	return &confirmDialog{title: title, detail: detail}
}

func (c *confirmDialog) View() string {
	var b strings.Builder
	b.WriteString(ui.ErrorStyle.Render(c.title))
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	b.WriteString("\n\n")
	b.WriteString(c.detail)
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("This action cannot be undone."))
	b.WriteString("\n\n")
	if c.pending {
		b.WriteString(ui.DimStyle.Render("Deleting..."))
	} else {
		b.WriteString(ui.DimStyle.Render("enter confirm   esc cancel"))
	}
	return ui.BoxStyle.Render(b.String())
}
