package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JasperRosales/aircraft-system-fe/ui"
)

type Model struct {
	svc    *Services
	screen Screen

	// Screen models
	login    *LoginModel
	register *RegisterModel
	user     *UserModel
	mechanic *MechanicModel

	// Terminal size
	width  int
	height int

	booting bool
}

func New(svc *Services) *Model {
	m := &Model{
		svc:     svc,
		screen:  LoginScreen(),
		booting: true,
	}
	m.login = NewLoginModel(svc)
	return m
}

// Init resolves the session cookie before showing anything; a still-valid
// session skips the login screen.
func (m *Model) Init() tea.Cmd {
	return checkSessionCmd(m.svc)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if ui.IsQuit(msg) {
			return m, tea.Quit
		}

	case sessionCheckedMsg:
		m.booting = false
		if msg.user != nil {
			return m.navigate(ForUser(msg.user))
		}
		return m, nil

	case loggedOutMsg:
		return m.navigate(LoginScreen())
	}

	// Delegate to active screen
	var cmd tea.Cmd
	var nav *Screen

	switch m.screen.Type {
	case ScreenLogin:
		m.login, cmd, nav = m.login.Update(msg)
	case ScreenRegister:
		m.register, cmd, nav = m.register.Update(msg)
	case ScreenUser:
		m.user, cmd, nav = m.user.Update(msg)
	case ScreenMechanic:
		m.mechanic, cmd, nav = m.mechanic.Update(msg)
	}

	if nav != nil {
		return m.navigate(*nav)
	}

	return m, cmd
}

func (m *Model) View() string {
	if m.booting {
		return "\n\n  " + ui.DimStyle.Render("Checking session...")
	}

	var content string
	switch m.screen.Type {
	case ScreenLogin:
		content = m.login.View(m.width, m.height)
	case ScreenRegister:
		content = m.register.View(m.width, m.height)
	case ScreenUser:
		content = m.user.View(m.width, m.height)
	case ScreenMechanic:
		content = m.mechanic.View(m.width, m.height)
	default:
		content = "Unknown screen"
	}

	// Ensure output fills full terminal height to prevent artifacts
	if m.height > 0 {
		content = ui.FitHeight(content, m.height)
	}
	return content
}

func (m *Model) navigate(to Screen) (*Model, tea.Cmd) {
	m.screen = to

	// Initialize new screen model
	var cmd tea.Cmd
	switch to.Type {
	case ScreenLogin:
		m.login = NewLoginModel(m.svc)
	case ScreenRegister:
		m.register = NewRegisterModel(m.svc)
	case ScreenUser:
		m.user, cmd = NewUserModel(m.svc, to.User)
	case ScreenMechanic:
		m.mechanic, cmd = NewMechanicModel(m.svc, to.User)
	}

	// Clear screen on navigation to prevent artifacts
	return m, tea.Batch(cmd, tea.ClearScreen)
}
