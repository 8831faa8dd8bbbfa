package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/ui"
)

const textinputPassword = textinput.EchoPassword

// fieldSet is a vertical group of labelled text inputs with one focused at
// a time.
type fieldSet struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newFieldSet(fields ...struct{ label, placeholder, value string }) *fieldSet {
	fs := &fieldSet{}
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.SetValue(f.value)
		ti.CharLimit = 100
		ti.Width = 32
		if i == 0 {
			ti.Focus()
		}
		fs.labels = append(fs.labels, f.label)
		fs.inputs = append(fs.inputs, ti)
	}
	return fs
}

func field(label, placeholder, value string) struct{ label, placeholder, value string } {
	return struct{ label, placeholder, value string }{label, placeholder, value}
}

func (fs *fieldSet) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case ui.IsTab(key) || key.Type == tea.KeyDown:
			fs.setFocus((fs.focus + 1) % len(fs.inputs))
			return nil
		case ui.IsShiftTab(key) || key.Type == tea.KeyUp:
			fs.setFocus((fs.focus - 1 + len(fs.inputs)) % len(fs.inputs))
			return nil
		}
	}
	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	return cmd
}

func (fs *fieldSet) setFocus(i int) {
	fs.inputs[fs.focus].Blur()
	fs.focus = i
	fs.inputs[fs.focus].Focus()
}

func (fs *fieldSet) value(i int) string {
	return strings.TrimSpace(fs.inputs[i].Value())
}

func (fs *fieldSet) View() string {
	var b strings.Builder
	for i := range fs.inputs {
		b.WriteString(ui.DimStyle.Render(fs.labels[i]))
		b.WriteString("\n")
		b.WriteString(fs.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

// planeForm backs both the add-plane and edit-plane dialogs; editing is
// the variant with a non-nil existing plane.
type planeForm struct {
	fields  *fieldSet
	editing *api.Plane
	errLine string
	saving  bool
}

func newPlaneForm(editing *api.Plane) *planeForm {
	tail, model := "", ""
	if editing != nil {
		tail, model = editing.TailNumber, editing.Model
	}
	return &planeForm{
		fields: newFieldSet(
			field("Tail Number", "e.g., N12345", tail),
			field("Model", "e.g., Boeing 737", model),
		),
		editing: editing,
	}
}

// submit validates and returns the mutation command, or nil when
// validation failed (the error is shown inline and nothing is sent).
func (f *planeForm) submit(svc *Services) tea.Cmd {
	tail := f.fields.value(0)
	model := f.fields.value(1)
	if tail == "" || model == "" {
		f.errLine = "Tail number and model are required"
		return nil
	}
	f.errLine = ""
	f.saving = true
	if f.editing != nil {
		return updatePlaneCmd(svc, f.editing.ID, api.UpdatePlaneRequest{TailNumber: &tail, Model: &model})
	}
	return createPlaneCmd(svc, api.CreatePlaneRequest{TailNumber: tail, Model: model})
}

func (f *planeForm) View() string {
	title := "ADD PLANE"
	if f.editing != nil {
		title = "EDIT PLANE"
	}
	return renderFormBox(title, f.fields.View(), f.errLine, f.saving)
}

// partForm backs add-part and edit-part.
type partForm struct {
	fields  *fieldSet
	planeID int
	editing *api.PlanePart
	errLine string
	saving  bool
}

func newPartForm(planeID int, editing *api.PlanePart) *partForm {
	name, serial, category := "", "", ""
	hours, limit := "0", "1000"
	if editing != nil {
		name, serial, category = editing.PartName, editing.SerialNumber, editing.Category
		hours = strconv.FormatFloat(editing.UsageHours, 'f', -1, 64)
		limit = strconv.FormatFloat(editing.UsageLimitHours, 'f', -1, 64)
	}
	return &partForm{
		fields: newFieldSet(
			field("Part Name", "e.g., Engine", name),
			field("Serial Number", "e.g., SN12345", serial),
			field("Category", "e.g., Engine, Avionics, Structural", category),
			field("Usage Hours", "0", hours),
			field("Usage Limit (Hours)", "1000", limit),
		),
		planeID: planeID,
		editing: editing,
	}
}

func (f *partForm) submit(svc *Services) tea.Cmd {
	name := f.fields.value(0)
	serial := f.fields.value(1)
	category := f.fields.value(2)
	if name == "" || serial == "" || category == "" {
		f.errLine = "Name, serial number and category are required"
		return nil
	}
	hours, err := strconv.ParseFloat(f.fields.value(3), 64)
	if err != nil || hours < 0 {
		f.errLine = "Usage hours must be a number >= 0"
		return nil
	}
	limit, err := strconv.ParseFloat(f.fields.value(4), 64)
	if err != nil || limit < 1 {
		f.errLine = "Usage limit must be a number >= 1"
		return nil
	}

	f.errLine = ""
	f.saving = true
	if f.editing != nil {
		return updatePartCmd(svc, f.planeID, f.editing.ID, api.UpdatePartRequest{
			PartName:        &name,
			SerialNumber:    &serial,
			Category:        &category,
			UsageHours:      &hours,
			UsageLimitHours: &limit,
		})
	}
	return addPartCmd(svc, f.planeID, api.CreatePartRequest{
		PartName:        name,
		SerialNumber:    serial,
		Category:        category,
		UsageHours:      hours,
		UsageLimitHours: limit,
	})
}

func (f *partForm) View() string {
	title := "ADD PART"
	if f.editing != nil {
		title = "EDIT PART"
	}
	return renderFormBox(title, f.fields.View(), f.errLine, f.saving)
}

// usageForm is the "add N hours to all parts" dialog.
type usageForm struct {
	fields    *fieldSet
	planeID   int
	partCount int
	errLine   string
	saving    bool
}

func newUsageForm(planeID, partCount int) *usageForm {
	return &usageForm{
		fields:    newFieldSet(field("Hours to Add", "e.g., 10", "")),
		planeID:   planeID,
		partCount: partCount,
	}
}

func (f *usageForm) submit(svc *Services, parts []api.PlanePart) tea.Cmd {
	hours, err := strconv.ParseFloat(f.fields.value(0), 64)
	if err != nil || hours <= 0 {
		f.errLine = "Enter a number of hours greater than zero"
		return nil
	}
	if f.partCount == 0 {
		f.errLine = "This aircraft has no parts to update"
		return nil
	}
	f.errLine = ""
	f.saving = true
	return bulkUsageCmd(svc, f.planeID, parts, hours)
}

func (f *usageForm) View() string {
	body := fmt.Sprintf("This adds hours to all %d part(s) of this aircraft.\n\n%s", f.partCount, f.fields.View())
	return renderFormBox("UPDATE ALL PARTS USAGE", body, f.errLine, f.saving)
}

func renderFormBox(title, body, errLine string, saving bool) string {
	var b strings.Builder
	b.WriteString(ui.HeaderStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("─────────────────────────────────"))
	b.WriteString("\n\n")
	b.WriteString(body)
	if errLine != "" {
		b.WriteString("\n")
		b.WriteString(ui.ErrorStyle.Render(errLine))
	}
	b.WriteString("\n\n")
	if saving {
		b.WriteString(ui.DimStyle.Render("Saving..."))
	} else {
		b.WriteString(ui.DimStyle.Render("enter save   tab next field   esc cancel"))
	}
	return ui.BoxStyle.Render(b.String())
}
