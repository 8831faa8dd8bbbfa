package model

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JasperRosales/aircraft-system-fe/ui"
)

type LoginModel struct {
	svc     *Services
	fields  *fieldSet
	errLine string
	loading bool
}

func NewLoginModel(svc *Services) *LoginModel {
	fields := newFieldSet(
		field("Username", "Enter your username", ""),
		field("Password", "Enter your password", ""),
	)
	fields.inputs[1].EchoMode = textinputPassword
	return &LoginModel{svc: svc, fields: fields}
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd, *Screen) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil, nil
		}
		if ui.IsEnter(msg) {
			name := m.fields.value(0)
			password := m.fields.value(1)
			if name == "" || password == "" {
				m.errLine = "Please enter both username and password"
				return m, nil, nil
			}
			m.errLine = ""
			m.loading = true
			return m, loginCmd(m.svc, name, password), nil
		}
		if msg.String() == "ctrl+n" {
			s := RegisterScreen()
			return m, nil, &s
		}

	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			// Server message shown verbatim; the form keeps its values
			// so the user can correct and resubmit.
			m.errLine = msg.err.Error()
			return m, nil, nil
		}
		s := ForUser(msg.user)
		return m, nil, &s
	}

	return m, m.fields.Update(msg), nil
}

func (m *LoginModel) View(width, height int) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var b strings.Builder
	b.WriteString(ui.HeaderStyle.Render("AIRCRAFT SYSTEM"))
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("Sign in to continue"))
	b.WriteString("\n\n")
	b.WriteString(m.fields.View())
	if m.errLine != "" {
		b.WriteString("\n")
		b.WriteString(ui.ErrorStyle.Render(m.errLine))
	}
	b.WriteString("\n\n")
	if m.loading {
		b.WriteString(ui.DimStyle.Render("Signing in..."))
	} else {
		b.WriteString(ui.DimStyle.Render("enter sign in   ctrl+n create account   ctrl+c quit"))
	}

	box := ui.BoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
