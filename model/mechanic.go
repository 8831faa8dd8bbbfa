package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/metrics"
	"github.com/JasperRosales/aircraft-system-fe/ui"
)

// MechanicModel is the maintenance dashboard: the parts status overview
// with a plane-model filter, the per-plane maintenance activity pager, and
// the alerts badge and list.
type MechanicModel struct {
	svc  *Services
	user *api.User

	planes       []api.Plane
	allParts     []api.PlanePart
	warningParts []api.PlanePart // alerts endpoint at the warning threshold

	filterModel string // empty = all planes
	filterIdx   int

	current         int // maintenance activity plane index
	activityParts   []api.PlanePart
	activityLoading bool

	alertsOpen bool

	planeForm *planeForm
	confirm   *confirmDialog
	deleting  *api.Plane
	partsView *PartsViewModel
}

func NewMechanicModel(svc *Services, user *api.User) (*MechanicModel, tea.Cmd) {
	m := &MechanicModel{svc: svc, user: user, activityLoading: true}
	return m, tea.Batch(loadPlanesCmd(svc), loadAllPartsCmd(svc), loadWarningPartsCmd(svc))
}

func (m *MechanicModel) Update(msg tea.Msg) (*MechanicModel, tea.Cmd, *Screen) {
	// The parts view owns keys and part messages while open; roster and
	// plane messages still land here so the panels behind it stay fresh.
	if m.partsView != nil {
		switch msg.(type) {
		case tea.KeyMsg, viewPartsMsg, partSavedMsg, partDeletedMsg, bulkUsageDoneMsg:
			pv, cmd, closed := m.partsView.Update(msg)
			m.partsView = pv
			if closed {
				m.partsView = nil
			}
			// Part mutations change the roster and the alert set too,
			// so refresh them as the messages pass through.
			switch msg.(type) {
			case partSavedMsg, partDeletedMsg, bulkUsageDoneMsg:
				refresh := []tea.Cmd{cmd, loadAllPartsCmd(m.svc), loadWarningPartsCmd(m.svc)}
				if id := m.currentPlaneID(); id != 0 {
					refresh = append(refresh, loadActivityPartsCmd(m.svc, id))
				}
				cmd = tea.Batch(refresh...)
			}
			return m, cmd, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case planesLoadedMsg:
		if msg.err != nil {
			m.svc.Log.Error("load planes: %v", msg.err)
			return m, nil, nil
		}
		m.planes = msg.planes
		if m.current >= len(m.planes) {
			m.current = 0
		}
		if len(m.planes) == 0 {
			m.activityLoading = false
			m.activityParts = nil
			return m, nil, nil
		}
		m.activityLoading = true
		return m, loadActivityPartsCmd(m.svc, m.planes[m.current].ID), nil

	case activityPartsMsg:
		// Last-resolving fetch wins; rapid navigation can briefly show a
		// superseded plane's parts.
		m.activityLoading = false
		if msg.err != nil {
			m.svc.Log.Error("load parts for plane %d: %v", msg.planeID, msg.err)
			m.activityParts = nil
		} else {
			m.activityParts = msg.parts
		}
		return m, nil, nil

	case allPartsMsg:
		if msg.err != nil {
			m.svc.Log.Error("load all parts: %v", msg.err)
			m.allParts = nil
		} else {
			m.allParts = msg.parts
		}
		return m, nil, nil

	case warningPartsMsg:
		if msg.err != nil {
			m.svc.Log.Error("load warning parts: %v", msg.err)
			m.warningParts = nil
		} else {
			m.warningParts = msg.parts
		}
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
		return m, loadPlanesCmd(m.svc), nil

	case planeDeletedMsg:
		m.confirm = nil
		m.deleting = nil
		if msg.err != nil {
			m.svc.Log.Error("delete plane %d: %v", msg.planeID, msg.err)
			return m, nil, nil
		}
		// The delete cascaded to the plane's parts; reload everything.
		return m, tea.Batch(loadPlanesCmd(m.svc), loadAllPartsCmd(m.svc), loadWarningPartsCmd(m.svc)), nil
	}

	return m, nil, nil
}

func (m *MechanicModel) updateKey(msg tea.KeyMsg) (*MechanicModel, tea.Cmd, *Screen) {
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
	if m.alertsOpen {
		if ui.IsBack(msg) || ui.IsEnter(msg) || msg.String() == "n" {
			m.alertsOpen = false
		}
		return m, nil, nil
	}

	switch {
	case ui.IsLeft(msg):
		return m.navigateActivity(-1)
	case ui.IsRight(msg):
		return m.navigateActivity(+1)
	case ui.IsEnter(msg) || msg.String() == "v":
		if p := m.currentPlane(); p != nil {
			var cmd tea.Cmd
			m.partsView, cmd = NewPartsViewModel(m.svc, *p)
			return m, cmd, nil
		}
	case msg.String() == "n":
		m.alertsOpen = true
	case msg.String() == "f":
		return m.cycleFilter()
	case msg.String() == "e":
		if p := m.currentPlane(); p != nil {
			m.planeForm = newPlaneForm(p)
		}
	case msg.String() == "d":
		if p := m.currentPlane(); p != nil {
			m.deleting = p
			m.confirm = newConfirmDialog("DELETE PLANE",
				fmt.Sprintf("Delete %s (%s) and all of its parts?", p.Model, p.TailNumber))
		}
	case msg.String() == "a":
		m.planeForm = newPlaneForm(nil)
	case msg.String() == "r":
		m.activityLoading = true
		return m, tea.Batch(loadPlanesCmd(m.svc), loadAllPartsCmd(m.svc), loadWarningPartsCmd(m.svc)), nil
	case msg.String() == "q":
		return m, logoutCmd(m.svc), nil
	}
	return m, nil, nil
}

// navigateActivity moves the maintenance-activity pager with wraparound
// and refetches the now-current plane's parts.
func (m *MechanicModel) navigateActivity(delta int) (*MechanicModel, tea.Cmd, *Screen) {
	if len(m.planes) == 0 {
		return m, nil, nil
	}
	m.current = (m.current + delta + len(m.planes)) % len(m.planes)
	m.activityLoading = true
	return m, loadActivityPartsCmd(m.svc, m.planes[m.current].ID), nil
}

// cycleFilter advances the plane-model filter. Every change issues a fresh
// paired fetch of the full part and warning-part lists; the model filter
// itself is applied client-side over the results.
func (m *MechanicModel) cycleFilter() (*MechanicModel, tea.Cmd, *Screen) {
	models := m.filterOptions()
	m.filterIdx = (m.filterIdx + 1) % len(models)
	m.filterModel = models[m.filterIdx]
	return m, tea.Batch(loadAllPartsCmd(m.svc), loadWarningPartsCmd(m.svc)), nil
}

// filterOptions is "" (all planes) plus each distinct model in fleet order.
func (m *MechanicModel) filterOptions() []string {
	options := []string{""}
	seen := map[string]bool{}
	for _, p := range m.planes {
		if !seen[p.Model] {
			seen[p.Model] = true
			options = append(options, p.Model)
		}
	}
	return options
}

func (m *MechanicModel) currentPlane() *api.Plane {
	if len(m.planes) == 0 {
		return nil
	}
	return &m.planes[m.current]
}

func (m *MechanicModel) currentPlaneID() int {
	if p := m.currentPlane(); p != nil {
		return p.ID
	}
	return 0
}

func (m *MechanicModel) View(width, height int) string {
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
	if m.alertsOpen {
		return m.viewAlerts(width, height)
	}

	// Header: title, alerts badge, hints
	badge := ""
	if n := len(m.warningParts); n > 0 {
		badge = ui.BadgeStyle.Render(fmt.Sprintf("%d alerts", n)) + "  "
	}
	left := "  " + ui.HeaderStyle.Render("MECHANIC DASHBOARD")
	right := badge + ui.DimStyle.Render("n alerts   q logout")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	header := "\n" + left + strings.Repeat(" ", gap) + right + "\n"

	splitHeight := height - 4
	if splitHeight < 10 {
		splitHeight = 10
	}

	// The activity pager needs more room than the overview bars.
	split := ui.RenderSplitPane(m.renderOverview(splitHeight), m.renderActivity(splitHeight), width-2, splitHeight, 40)

	return header + split
}

// renderOverview is the parts status panel over the filtered roster.
func (m *MechanicModel) renderOverview(height int) string {
	filtered := metrics.FilterByModel(m.allParts, m.planes, m.filterModel)
	summary := metrics.Summarize(filtered)

	filterLabel := "All Planes"
	if m.filterModel != "" {
		filterLabel = m.filterModel
	}

	var lines []string
	lines = append(lines, ui.HeaderStyle.Render("PARTS STATUS OVERVIEW"))
	lines = append(lines, ui.DimStyle.Render("Filter: ")+ui.TailNumberStyle.Render(filterLabel)+ui.DimStyle.Render("  (f to change)"))
	lines = append(lines, "")
	lines = append(lines, "Good     "+ui.RatioBar(summary.GoodPct, 16, ui.GoodStyle))
	lines = append(lines, "Warning  "+ui.RatioBar(summary.WarningPct, 16, ui.WarningStyle))
	lines = append(lines, "Critical "+ui.RatioBar(summary.CriticalPct, 16, ui.CriticalStyle))
	lines = append(lines, "")
	lines = append(lines, ui.DimStyle.Render("─────────────────────"))
	lines = append(lines, fmt.Sprintf("%d total parts", summary.Total))
	lines = append(lines, ui.WarningStyle.Render(fmt.Sprintf("%d warning", summary.Warning))+"   "+ui.CriticalStyle.Render(fmt.Sprintf("%d critical", summary.Critical)))

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderActivity is the per-plane maintenance pager.
func (m *MechanicModel) renderActivity(height int) string {
	var b strings.Builder

	b.WriteString(ui.HeaderStyle.Render("MAINTENANCE ACTIVITY"))
	if len(m.planes) > 0 {
		b.WriteString(strings.Repeat(" ", 5))
		b.WriteString(ui.CountStyle.Render(fmt.Sprintf("%d / %d", m.current+1, len(m.planes))))
	}
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	b.WriteString("\n\n")

	plane := m.currentPlane()
	if plane == nil {
		b.WriteString(ui.DimStyle.Render("No planes available"))
		return b.String()
	}

	b.WriteString(ui.DimStyle.Render("‹  "))
	b.WriteString(ui.SelectedLabelStyle.Render(strings.ToUpper(plane.Model)))
	b.WriteString("  ")
	b.WriteString(ui.TailNumberStyle.Render(plane.TailNumber))
	b.WriteString(ui.DimStyle.Render("  ›"))
	b.WriteString("\n\n")

	b.WriteString(ui.DimStyle.Render(fmt.Sprintf("Parts (%d)", len(m.activityParts))))
	b.WriteString("\n")

	if m.activityLoading {
		b.WriteString(ui.DimStyle.Render("Loading..."))
	} else if len(m.activityParts) == 0 {
		b.WriteString(ui.DimStyle.Render("No parts found for this aircraft"))
	} else {
		shown := m.activityParts
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, p := range shown {
			b.WriteString(fmt.Sprintf("%-22s", truncateName(p.PartName, 20)))
			b.WriteString(ui.UsageBar(p.UsagePercent, 10))
			b.WriteString(ui.DimStyle.Render(fmt.Sprintf("  %.0f/%.0f hrs", p.UsageHours, p.UsageLimitHours)))
			b.WriteString("\n")
		}
		if extra := len(m.activityParts) - 5; extra > 0 {
			b.WriteString(ui.DimStyle.Render(fmt.Sprintf("+%d more parts", extra)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("←→ plane   enter parts   a add   e edit   d delete   r refresh"))
	return b.String()
}

// viewAlerts is the notification list: the warning-threshold fetch split
// into critical and warning groups.
func (m *MechanicModel) viewAlerts(width, height int) string {
	critical, warning := metrics.SplitAlerts(m.warningParts)
	total := len(critical) + len(warning)

	var b strings.Builder
	b.WriteString("\n\n  ")
	b.WriteString(ui.HeaderStyle.Render("MAINTENANCE ALERTS"))
	b.WriteString(strings.Repeat(" ", 5))
	b.WriteString(ui.CountStyle.Render(fmt.Sprintf("%d part(s) requiring attention", total)))
	b.WriteString("\n  ")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	b.WriteString("\n\n")

	if total == 0 {
		b.WriteString("  " + ui.GoodStyle.Render("All clear!"))
		b.WriteString("\n  " + ui.DimStyle.Render("No parts require immediate attention"))
	} else {
		if len(critical) > 0 {
			b.WriteString("  " + ui.CriticalStyle.Render(fmt.Sprintf("CRITICAL (%d)", len(critical))))
			b.WriteString("  " + ui.DimStyle.Render("80%+ usage"))
			b.WriteString("\n")
			writeAlertGroup(&b, critical)
			b.WriteString("\n")
		}
		if len(warning) > 0 {
			b.WriteString("  " + ui.WarningStyle.Render(fmt.Sprintf("WARNING (%d)", len(warning))))
			b.WriteString("  " + ui.DimStyle.Render("50-79% usage"))
			b.WriteString("\n")
			writeAlertGroup(&b, warning)
		}
	}

	b.WriteString("\n\n  ")
	b.WriteString(ui.DimStyle.Render("esc close"))
	return b.String()
}

// truncateName shortens long part names to max runes, never mid-rune.
func truncateName(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func writeAlertGroup(b *strings.Builder, parts []api.PlanePart) {
	for _, p := range parts {
		b.WriteString(fmt.Sprintf("    %-22s", p.PartName))
		b.WriteString(ui.DimStyle.Render(fmt.Sprintf("%-24s", p.Category+" | S/N: "+p.SerialNumber)))
		b.WriteString(ui.BucketStyle(p.UsagePercent).Render(fmt.Sprintf("%.1f%%", p.UsagePercent)))
		b.WriteString(ui.DimStyle.Render(fmt.Sprintf("  %.0f / %.0f hrs", p.UsageHours, p.UsageLimitHours)))
		b.WriteString("\n")
	}
}
