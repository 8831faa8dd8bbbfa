package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/ui"
)

// PartsViewModel is the per-plane parts screen both dashboards open. It
// owns the add/edit part forms, the bulk usage dialog, and part deletion.
type PartsViewModel struct {
	svc     *Services
	plane   api.Plane
	parts   []api.PlanePart
	menu    *ui.Menu
	loading bool

	partForm  *partForm
	usageForm *usageForm
	confirm   *confirmDialog
	deleting  *api.PlanePart
}

func NewPartsViewModel(svc *Services, plane api.Plane) (*PartsViewModel, tea.Cmd) {
	m := &PartsViewModel{
		svc:     svc,
		plane:   plane,
		loading: true,
		menu:    ui.NewMenu(nil),
	}
	return m, loadViewPartsCmd(svc, plane.ID)
}

// Update returns closed=true when the user leaves the view.
func (m *PartsViewModel) Update(msg tea.Msg) (*PartsViewModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case viewPartsMsg:
		// No stale-response guard: whichever fetch resolves last wins.
		m.loading = false
		if msg.err != nil {
			m.svc.Log.Error("load parts for plane %d: %v", msg.planeID, msg.err)
			m.parts = nil
		} else {
			m.parts = msg.parts
		}
		m.rebuildMenu()
		return m, nil, false

	case partSavedMsg:
		if m.partForm == nil {
			return m, nil, false
		}
		if msg.err != nil {
			m.partForm.saving = false
			m.partForm.errLine = msg.err.Error()
			return m, nil, false
		}
		// Show the server's record right away, then let the refetch
		// replace the whole list.
		if msg.part != nil {
			m.applyPart(*msg.part)
			m.rebuildMenu()
		}
		m.partForm = nil
		return m, loadViewPartsCmd(m.svc, m.plane.ID), false

	case partDeletedMsg:
		m.confirm = nil
		m.deleting = nil
		if msg.err != nil {
			m.svc.Log.Error("delete part: %v", msg.err)
		}
		return m, loadViewPartsCmd(m.svc, m.plane.ID), false

	case bulkUsageDoneMsg:
		if m.usageForm != nil {
			if msg.err != nil {
				// Partial application: msg.updated parts were written
				// before the failure and stay written.
				m.usageForm.saving = false
				m.usageForm.errLine = fmt.Sprintf("%v (updated %d of %d)", msg.err, msg.updated, len(m.parts))
				return m, loadViewPartsCmd(m.svc, m.plane.ID), false
			}
			m.usageForm = nil
		}
		return m, loadViewPartsCmd(m.svc, m.plane.ID), false
	}

	return m, nil, false
}

func (m *PartsViewModel) updateKey(msg tea.KeyMsg) (*PartsViewModel, tea.Cmd, bool) {
	// Modal dialogs capture all keys while open
	if m.partForm != nil {
		if ui.IsBack(msg) && !m.partForm.saving {
			m.partForm = nil
			return m, nil, false
		}
		if ui.IsEnter(msg) && !m.partForm.saving {
			return m, m.partForm.submit(m.svc), false
		}
		return m, m.partForm.fields.Update(msg), false
	}
	if m.usageForm != nil {
		if ui.IsBack(msg) && !m.usageForm.saving {
			m.usageForm = nil
			return m, nil, false
		}
		if ui.IsEnter(msg) && !m.usageForm.saving {
			return m, m.usageForm.submit(m.svc, m.parts), false
		}
		return m, m.usageForm.fields.Update(msg), false
	}
	if m.confirm != nil {
		if ui.IsBack(msg) && !m.confirm.pending {
			m.confirm = nil
			m.deleting = nil
			return m, nil, false
		}
		if ui.IsEnter(msg) && !m.confirm.pending && m.deleting != nil {
			m.confirm.pending = true
			return m, deletePartCmd(m.svc, m.plane.ID, m.deleting.ID), false
		}
		return m, nil, false
	}

	switch {
	case ui.IsBack(msg):
		return m, nil, true
	case ui.IsUp(msg):
		m.menu.Up()
	case ui.IsDown(msg):
		m.menu.Down()
	case msg.String() == "a":
		m.partForm = newPartForm(m.plane.ID, nil)
	case msg.String() == "e":
		if p := m.selectedPart(); p != nil {
			m.partForm = newPartForm(m.plane.ID, p)
		}
	case msg.String() == "d":
		if p := m.selectedPart(); p != nil {
			m.deleting = p
			m.confirm = newConfirmDialog("DELETE PART",
				fmt.Sprintf("Delete %s (S/N %s)?", p.PartName, p.SerialNumber))
		}
	case msg.String() == "u":
		m.usageForm = newUsageForm(m.plane.ID, len(m.parts))
	case msg.String() == "r":
		m.loading = true
		return m, loadViewPartsCmd(m.svc, m.plane.ID), false
	}
	return m, nil, false
}

func (m *PartsViewModel) selectedPart() *api.PlanePart {
	item := m.menu.Selected()
	if item == nil {
		return nil
	}
	var id int
	fmt.Sscanf(item.ID, "%d", &id)
	for i := range m.parts {
		if m.parts[i].ID == id {
			return &m.parts[i]
		}
	}
	return nil
}

func (m *PartsViewModel) applyPart(part api.PlanePart) {
	for i := range m.parts {
		if m.parts[i].ID == part.ID {
			m.parts[i] = part
			return
		}
	}
	m.parts = append(m.parts, part)
}

func (m *PartsViewModel) rebuildMenu() {
	cursor := m.menu.Cursor
	var items []ui.MenuItem
	for _, p := range m.parts {
		items = append(items, ui.MenuItem{
			ID:     fmt.Sprintf("%d", p.ID),
			Label:  p.PartName,
			Hint:   fmt.Sprintf("%s | S/N: %s", p.Category, p.SerialNumber),
			Status: ui.UsageBar(p.UsagePercent, 12) + ui.DimStyle.Render(fmt.Sprintf("  %.0f/%.0f hrs", p.UsageHours, p.UsageLimitHours)),
		})
	}
	m.menu = ui.NewMenu(items)
	if cursor < len(items) {
		m.menu.Cursor = cursor
	}
	m.menu.LabelWidth = 22
}

func (m *PartsViewModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	if m.partForm != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.partForm.View())
	}
	if m.usageForm != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.usageForm.View())
	}
	if m.confirm != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var b strings.Builder
	b.WriteString("\n\n  ")
	b.WriteString(ui.HeaderStyle.Render(strings.ToUpper(m.plane.Model)))
	b.WriteString("  ")
	b.WriteString(ui.TailNumberStyle.Render(m.plane.TailNumber))
	b.WriteString(strings.Repeat(" ", 5))
	b.WriteString(ui.CountStyle.Render(fmt.Sprintf("%d parts", len(m.parts))))
	b.WriteString("\n  ")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	b.WriteString("\n\n")

	menuHeight := height - 10
	if menuHeight < 5 {
		menuHeight = 5
	}
	if menuHeight > 15 {
		menuHeight = 15
	}
	m.menu.MaxVisibleItems = menuHeight

	if m.loading {
		b.WriteString("  " + ui.DimStyle.Render("Loading parts..."))
	} else if len(m.parts) == 0 {
		b.WriteString("  " + ui.DimStyle.Render("No parts found for this aircraft"))
	} else {
		for _, line := range strings.Split(m.menu.View(), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n\n  ")
	b.WriteString(ui.DimStyle.Render("↑↓ navigate   a add   e edit   d delete   u update all usage   r refresh   esc back"))

	return b.String()
}
