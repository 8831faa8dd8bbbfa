package model

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JasperRosales/aircraft-system-fe/ui"
)

type RegisterModel struct {
	svc     *Services
	fields  *fieldSet
	role    string // "user" or "mechanic"; collected but never sent
	errLine string
	created bool
	loading bool
}

func NewRegisterModel(svc *Services) *RegisterModel {
	fields := newFieldSet(
		field("Username", "Pick a username", ""),
		field("Password", "Pick a password", ""),
		field("Confirm Password", "Repeat the password", ""),
	)
	fields.inputs[1].EchoMode = textinputPassword
	fields.inputs[2].EchoMode = textinputPassword
	return &RegisterModel{svc: svc, fields: fields, role: "user"}
}

func (m *RegisterModel) Update(msg tea.Msg) (*RegisterModel, tea.Cmd, *Screen) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil, nil
		}
		if ui.IsBack(msg) || (m.created && ui.IsEnter(msg)) {
			s := LoginScreen()
			return m, nil, &s
		}
		if m.created {
			return m, nil, nil
		}
		// Role toggle. The server assigns "user" no matter what is
		// picked here. Arrow keys stay with the focused input.
		if msg.String() == "ctrl+r" {
			if m.role == "user" {
				m.role = "mechanic"
			} else {
				m.role = "user"
			}
			return m, nil, nil
		}
		if ui.IsEnter(msg) {
			name := m.fields.value(0)
			password := m.fields.value(1)
			confirm := m.fields.value(2)
			if name == "" || password == "" {
				m.errLine = "Username and password are required"
				return m, nil, nil
			}
			if password != confirm {
				m.errLine = "Passwords do not match"
				return m, nil, nil
			}
			m.errLine = ""
			m.loading = true
			return m, registerCmd(m.svc, name, password), nil
		}

	case registerDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = msg.err.Error()
			return m, nil, nil
		}
		m.created = true
		return m, nil, nil
	}

	return m, m.fields.Update(msg), nil
}

func (m *RegisterModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var b strings.Builder
	b.WriteString(ui.HeaderStyle.Render("CREATE ACCOUNT"))
	b.WriteString("\n\n")

	if m.created {
		b.WriteString(ui.GoodStyle.Render("Account created."))
		b.WriteString("\n")
		b.WriteString(ui.DimStyle.Render("Sign in with your new credentials."))
		b.WriteString("\n\n")
		b.WriteString(ui.DimStyle.Render("enter continue"))
	} else {
		b.WriteString(m.fields.View())
		b.WriteString("\n")
		b.WriteString(ui.DimStyle.Render("Role:  "))
		b.WriteString(radio("user", m.role == "user"))
		b.WriteString("   ")
		b.WriteString(radio("mechanic", m.role == "mechanic"))
		if m.errLine != "" {
			b.WriteString("\n\n")
			b.WriteString(ui.ErrorStyle.Render(m.errLine))
		}
		b.WriteString("\n\n")
		if m.loading {
			b.WriteString(ui.DimStyle.Render("Creating account..."))
		} else {
			b.WriteString(ui.DimStyle.Render("enter create   ctrl+r role   esc back"))
		}
	}

	box := ui.BoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func radio(label string, selected bool) string {
	if selected {
		return ui.SelectedStyle.Render("(•) " + label)
	}
	return ui.DimStyle.Render("( ) " + label)
}
