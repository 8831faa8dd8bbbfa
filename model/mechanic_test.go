package model

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/applog"
)

func testServices() *Services {
	return NewServices(api.NewClient(""), applog.Discard())
}

func threePlanes() []api.Plane {
	return []api.Plane{
		{ID: 1, Model: "Boeing 737", TailNumber: "N111AA"},
		{ID: 2, Model: "Airbus A320", TailNumber: "N222BB"},
		{ID: 3, Model: "Boeing 737", TailNumber: "N333CC"},
	}
}

func TestActivityNavigationWrapsAround(t *testing.T) {
	m := &MechanicModel{svc: testServices(), planes: threePlanes()}

	m, cmd, _ := m.navigateActivity(-1)
	if m.current != 2 {
		t.Fatalf("left from 0 landed on %d, want 2", m.current)
	}
	if cmd == nil {
		t.Fatal("navigation must refetch the now-current plane's parts")
	}
	if !m.activityLoading {
		t.Fatal("navigation should mark the activity pane loading")
	}

	m.current = 2
	m, _, _ = m.navigateActivity(+1)
	if m.current != 0 {
		t.Fatalf("right from 2 landed on %d, want 0", m.current)
	}
}

func TestActivityNavigationEmptyFleet(t *testing.T) {
	m := &MechanicModel{svc: testServices()}
	m, cmd, _ := m.navigateActivity(+1)
	if m.current != 0 || cmd != nil {
		t.Fatal("navigation with no planes should do nothing")
	}
}

func TestFilterCycleVisitsEachModelOnce(t *testing.T) {
	m := &MechanicModel{svc: testServices(), planes: threePlanes()}

	options := m.filterOptions()
	want := []string{"", "Boeing 737", "Airbus A320"}
	if len(options) != len(want) {
		t.Fatalf("filter options = %v, want %v", options, want)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Fatalf("filter options = %v, want %v", options, want)
		}
	}

	// A full cycle returns to "all planes", refetching every step.
	for i := 1; i <= len(want); i++ {
		var cmd tea.Cmd
		m, cmd, _ = m.cycleFilter()
		if cmd == nil {
			t.Fatal("every filter change must issue a fresh paired fetch")
		}
		if m.filterModel != want[i%len(want)] {
			t.Fatalf("after %d cycles filter = %q, want %q", i, m.filterModel, want[i%len(want)])
		}
	}
}

func TestForUserRoutesByRole(t *testing.T) {
	if s := ForUser(&api.User{Role: "mechanic"}); s.Type != ScreenMechanic {
		t.Errorf("mechanic role routed to %v", s.Type)
	}
	if s := ForUser(&api.User{Role: "user"}); s.Type != ScreenUser {
		t.Errorf("user role routed to %v", s.Type)
	}
	if s := ForUser(&api.User{Role: "somethingelse"}); s.Type != ScreenUser {
		t.Errorf("unknown role should fall back to the fleet view, got %v", s.Type)
	}
}

func TestLoginErrorKeepsFormValues(t *testing.T) {
	m := NewLoginModel(testServices())
	m.fields.inputs[0].SetValue("amy")
	m.fields.inputs[1].SetValue("hunter2")
	m.loading = true

	m, _, nav := m.Update(loginDoneMsg{err: &api.APIError{StatusCode: 401, Message: "invalid name or password"}})
	if nav != nil {
		t.Fatal("failed login must not navigate")
	}
	if m.errLine != "invalid name or password" {
		t.Errorf("error line = %q, want the server message verbatim", m.errLine)
	}
	if m.fields.value(0) != "amy" || m.fields.value(1) != "hunter2" {
		t.Error("form must keep its values after a failed submit")
	}
}

func TestRoleToggleLeavesArrowKeysToInputs(t *testing.T) {
	m := NewRegisterModel(testServices())
	if m.role != "user" {
		t.Fatalf("initial role = %q, want user", m.role)
	}

	// Arrow keys move the cursor in the focused input, never the role.
	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.role != "user" {
		t.Fatalf("arrow keys changed the role to %q", m.role)
	}

	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.role != "mechanic" {
		t.Fatalf("ctrl+r should toggle the role, got %q", m.role)
	}
	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.role != "user" {
		t.Fatalf("second toggle should return to user, got %q", m.role)
	}
}

func TestTruncateNameKeepsRunesWhole(t *testing.T) {
	if got := truncateName("Engine", 20); got != "Engine" {
		t.Errorf("short name changed: %q", got)
	}

	long := "Höhenruder-Stellmotor überlang"
	got := truncateName(long, 20)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if n := len([]rune(got)); n != 20 {
		t.Errorf("truncated to %d runes, want 20", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
	if !strings.HasPrefix(got, string([]rune(long)[:17])) {
		t.Errorf("prefix mangled: %q", got)
	}
}

func TestLoginSuccessNavigates(t *testing.T) {
	m := NewLoginModel(testServices())
	m.loading = true
	_, _, nav := m.Update(loginDoneMsg{user: &api.User{ID: 1, Name: "bob", Role: "mechanic"}})
	if nav == nil || nav.Type != ScreenMechanic {
		t.Fatalf("successful mechanic login should open the mechanic dashboard, got %+v", nav)
	}
}
