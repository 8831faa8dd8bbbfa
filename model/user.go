package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/ui"
)

// UserModel is the fleet owner dashboard: the plane list with add, edit,
// delete, and a per-plane parts view.
type UserModel struct {
	svc     *Services
	user    *api.User
	planes  []api.Plane
	menu    *ui.Menu
	loading bool

	planeForm *planeForm
	confirm   *confirmDialog
	deleting  *api.Plane
	partsView *PartsViewModel
}

func NewUserModel(svc *Services, user *api.User) (*UserModel, tea.Cmd) {
	m := &UserModel{
		svc:     svc,
		user:    user,
		loading: true,
		menu:    ui.NewMenu(nil),
	}
	return m, loadPlanesCmd(svc)
}

func (m *UserModel) Update(msg tea.Msg) (*UserModel, tea.Cmd, *Screen) {
	// The parts view owns keys and part messages while open
	if m.partsView != nil {
		switch msg.(type) {
		case tea.KeyMsg, viewPartsMsg, partSavedMsg, partDeletedMsg, bulkUsageDoneMsg:
			pv, cmd, closed := m.partsView.Update(msg)
			m.partsView = pv
			if closed {
				m.partsView = nil
			}
			return m, cmd, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case planesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Keep whatever was on screen; an empty list is the
			// first-load fallback.
			m.svc.Log.Error("load planes: %v", msg.err)
		} else {
			m.planes = msg.planes
		}
		m.rebuildMenu()
		return m, nil, nil

	case planeSavedMsg:
		if m.planeForm == nil {
			return m, nil, nil
		}
		if msg.err != nil {
			m.planeForm.saving = false
			m.planeForm.errLine = msg.err.Error()
			return m, nil, nil
		}
		m.planeForm = nil
		m.loading = true
		return m, loadPlanesCmd(m.svc), nil

	case planeDeletedMsg:
		m.confirm = nil
		m.deleting = nil
		if msg.err != nil {
			m.svc.Log.Error("delete plane %d: %v", msg.planeID, msg.err)
		}
		m.loading = true
		return m, loadPlanesCmd(m.svc), nil
	}

	return m, nil, nil
}

func (m *UserModel) updateKey(msg tea.KeyMsg) (*UserModel, tea.Cmd, *Screen) {
	if m.planeForm != nil {
		if ui.IsBack(msg) && !m.planeForm.saving {
			m.planeForm = nil
			return m, nil, nil
		}
		if ui.IsEnter(msg) && !m.planeForm.saving {
			return m, m.planeForm.submit(m.svc), nil
		}
		return m, m.planeForm.fields.Update(msg), nil
	}
	if m.confirm != nil {
		if ui.IsBack(msg) && !m.confirm.pending {
			m.confirm = nil
			m.deleting = nil
			return m, nil, nil
		}
		if ui.IsEnter(msg) && !m.confirm.pending && m.deleting != nil {
			m.confirm.pending = true
			return m, deletePlaneCmd(m.svc, m.deleting.ID), nil
		}
		return m, nil, nil
	}

	switch {
	case ui.IsUp(msg):
		m.menu.Up()
	case ui.IsDown(msg):
		m.menu.Down()
	case ui.IsEnter(msg):
		if p := m.selectedPlane(); p != nil {
			var cmd tea.Cmd
			m.partsView, cmd = NewPartsViewModel(m.svc, *p)
			return m, cmd, nil
		}
	case msg.String() == "a":
		m.planeForm = newPlaneForm(nil)
	case msg.String() == "e":
		if p := m.selectedPlane(); p != nil {
			m.planeForm = newPlaneForm(p)
		}
	case msg.String() == "d":
		if p := m.selectedPlane(); p != nil {
			m.deleting = p
			m.confirm = newConfirmDialog("DELETE PLANE",
				fmt.Sprintf("Delete %s (%s) and all of its parts?", p.Model, p.TailNumber))
		}
	case msg.String() == "r":
		m.loading = true
		return m, loadPlanesCmd(m.svc), nil
	case msg.String() == "q":
		return m, logoutCmd(m.svc), nil
	}
	return m, nil, nil
}

func (m *UserModel) selectedPlane() *api.Plane {
	item := m.menu.Selected()
	if item == nil {
		return nil
	}
	var id int
	fmt.Sscanf(item.ID, "%d", &id)
	for i := range m.planes {
		if m.planes[i].ID == id {
			return &m.planes[i]
		}
	}
	return nil
}

func (m *UserModel) rebuildMenu() {
	cursor := m.menu.Cursor
	var items []ui.MenuItem
	for _, p := range m.planes {
		items = append(items, ui.MenuItem{
			ID:    fmt.Sprintf("%d", p.ID),
			Label: p.Model,
			Hint:  p.TailNumber,
		})
	}
	m.menu = ui.NewMenu(items)
	if cursor < len(items) {
		m.menu.Cursor = cursor
	}
	m.menu.LabelWidth = 24
}

func (m *UserModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	if m.partsView != nil {
		return m.partsView.View(width, height)
	}
	if m.planeForm != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.planeForm.View())
	}
	if m.confirm != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	// Top margin with hint
	headerStyle := lipgloss.NewStyle().
		Width(width - 2).
		Padding(1, 1, 0, 1).
		Align(lipgloss.Right)

	header := headerStyle.Render(ui.DimStyle.Render("q logout"))

	splitHeight := height - 5
	if splitHeight < 10 {
		splitHeight = 10
	}

	// Narrow info pane; the plane menu gets the rest.
	split := ui.RenderSplitPane(m.renderLeftPane(splitHeight), m.renderRightPane(splitHeight), width-2, splitHeight, 35)

	return header + "\n" + split
}

func (m *UserModel) renderLeftPane(height int) string {
	var lines []string

	lines = append(lines, ui.HeaderStyle.Render("FLEET"))
	lines = append(lines, "")
	if m.user != nil {
		lines = append(lines, fmt.Sprintf("Signed in as %s", m.user.Name))
	}
	lines = append(lines, fmt.Sprintf("%d aircraft", len(m.planes)))
	lines = append(lines, "")
	lines = append(lines, ui.DimStyle.Render("Select an aircraft to"))
	lines = append(lines, ui.DimStyle.Render("view and manage its parts"))

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *UserModel) renderRightPane(height int) string {
	var b strings.Builder

	b.WriteString(ui.HeaderStyle.Render("AVAILABLE PLANES"))
	b.WriteString(strings.Repeat(" ", 5))
	b.WriteString(ui.CountStyle.Render(fmt.Sprintf("%d", len(m.planes))))
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))

	menuHeight := height - 5
	if menuHeight < 5 {
		menuHeight = 5
	}
	if menuHeight > 15 {
		menuHeight = 15
	}
	m.menu.MaxVisibleItems = menuHeight

	if len(m.menu.Items) > m.menu.MaxVisibleItems {
		b.WriteString("\n")
	} else {
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(ui.DimStyle.Render("Loading planes..."))
	} else if len(m.planes) == 0 {
		b.WriteString(ui.DimStyle.Render("No planes yet"))
		b.WriteString("\n\n")
		b.WriteString(ui.DimStyle.Render("Press 'a' to add the first one"))
	} else {
		b.WriteString(m.menu.View())
	}

	b.WriteString("\n\n")
	b.WriteString(ui.DimStyle.Render("↑↓ navigate   enter parts   a add   e edit   d delete   r refresh"))

	return b.String()
}
