package stub_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/stub"
)

// newSession spins up the stub and returns a client with a logged-in
// session, exercising register and login along the way.
func newSession(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(stub.New())
	t.Cleanup(srv.Close)

	c := api.NewClient(srv.URL)
	auth := api.NewAuthService(c)
	ctx := context.Background()

	u, err := auth.Register(ctx, "amy", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != "user" {
		t.Fatalf("registered role = %q, server must always assign \"user\"", u.Role)
	}

	if _, err := auth.Login(ctx, "amy", "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.Token() == "" {
		t.Fatal("expected a session token cookie after login")
	}
	return c
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv := httptest.NewServer(stub.New())
	defer srv.Close()

	c := api.NewClient(srv.URL)
	if _, err := api.NewPlaneService(c).All(context.Background()); err == nil {
		t.Fatal("expected an error without a session")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	srv := httptest.NewServer(stub.New())
	defer srv.Close()

	c := api.NewClient(srv.URL)
	auth := api.NewAuthService(c)
	ctx := context.Background()
	if _, err := auth.Register(ctx, "amy", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := auth.Login(ctx, "amy", "wrong"); err == nil {
		t.Fatal("expected login to fail")
	}
}

func TestPlaneRoundTrip(t *testing.T) {
	c := newSession(t)
	planes := api.NewPlaneService(c)
	ctx := context.Background()

	created, err := planes.Create(ctx, api.CreatePlaneRequest{TailNumber: "N12345", Model: "Boeing 737"})
	if err != nil {
		t.Fatalf("create plane: %v", err)
	}
	if created.ID == 0 || created.CreatedAt == "" {
		t.Fatalf("expected server-assigned id and created_at, got %+v", created)
	}

	all, err := planes.All(ctx)
	if err != nil {
		t.Fatalf("list planes: %v", err)
	}
	found := false
	for _, p := range all {
		if p.ID == created.ID && p.TailNumber == "N12345" && p.Model == "Boeing 737" {
			found = true
		}
	}
	if !found {
		t.Fatalf("created plane missing from list: %+v", all)
	}

	byTail, err := planes.GetByTailNumber(ctx, "N12345")
	if err != nil {
		t.Fatalf("lookup by tail: %v", err)
	}
	if byTail.ID != created.ID {
		t.Errorf("tail lookup returned id %d, want %d", byTail.ID, created.ID)
	}

	model := "Airbus A320"
	updated, err := planes.Update(ctx, created.ID, api.UpdatePlaneRequest{Model: &model})
	if err != nil {
		t.Fatalf("update plane: %v", err)
	}
	if updated.Model != "Airbus A320" || updated.TailNumber != "N12345" {
		t.Errorf("partial update went wrong: %+v", updated)
	}
}

func TestPartUsagePercentComputedServerSide(t *testing.T) {
	c := newSession(t)
	ctx := context.Background()
	planes := api.NewPlaneService(c)
	parts := api.NewPartService(c)

	plane, err := planes.Create(ctx, api.CreatePlaneRequest{TailNumber: "N1", Model: "Cessna 172"})
	if err != nil {
		t.Fatalf("create plane: %v", err)
	}

	part, err := parts.Add(ctx, plane.ID, api.CreatePartRequest{
		PartName:        "Engine",
		SerialNumber:    "ENG-001",
		Category:        "Engine",
		UsageHours:      120,
		UsageLimitHours: 150,
	})
	if err != nil {
		t.Fatalf("add part: %v", err)
	}
	if part.UsagePercent != 80 {
		t.Errorf("usage_percent = %v, want 80", part.UsagePercent)
	}

	// Setting usage is absolute: repeating the call must not accumulate.
	for i := 0; i < 2; i++ {
		part, err = parts.UpdateUsage(ctx, part.ID, 120)
		if err != nil {
			t.Fatalf("update usage: %v", err)
		}
	}
	if part.UsageHours != 120 {
		t.Errorf("usage_hours after two identical updates = %v, want 120", part.UsageHours)
	}

	if _, err := parts.Add(ctx, plane.ID, api.CreatePartRequest{
		PartName:        "Prop",
		SerialNumber:    "PROP-1",
		Category:        "Engine",
		UsageLimitHours: 0,
	}); err == nil {
		t.Error("expected usage_limit_hours below 1 to be rejected")
	}
}

func TestAlertsThreshold(t *testing.T) {
	c := newSession(t)
	ctx := context.Background()
	planes := api.NewPlaneService(c)
	parts := api.NewPartService(c)

	plane, _ := planes.Create(ctx, api.CreatePlaneRequest{TailNumber: "N2", Model: "Boeing 737"})
	add := func(name string, hours float64) {
		t.Helper()
		if _, err := parts.Add(ctx, plane.ID, api.CreatePartRequest{
			PartName: name, SerialNumber: name, Category: "Misc",
			UsageHours: hours, UsageLimitHours: 100,
		}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	add("good", 30)     // 30%
	add("warning", 50)  // 50%, at the boundary
	add("critical", 85) // 85%

	warn, err := parts.WarningParts(ctx, 50)
	if err != nil {
		t.Fatalf("warning parts: %v", err)
	}
	if len(warn) != 2 {
		t.Fatalf("threshold 50 returned %d parts, want 2", len(warn))
	}

	crit, err := parts.MaintenanceAlerts(ctx, 80)
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(crit) != 1 || crit[0].PartName != "critical" {
		t.Fatalf("threshold 80 returned %+v, want only the critical part", crit)
	}
}

func TestDeletePlaneCascades(t *testing.T) {
	c := newSession(t)
	ctx := context.Background()
	planes := api.NewPlaneService(c)
	parts := api.NewPartService(c)

	plane, _ := planes.Create(ctx, api.CreatePlaneRequest{TailNumber: "N3", Model: "Boeing 737"})
	part, err := parts.Add(ctx, plane.ID, api.CreatePartRequest{
		PartName: "Gear", SerialNumber: "LG-1", Category: "Structural", UsageLimitHours: 100,
	})
	if err != nil {
		t.Fatalf("add part: %v", err)
	}

	if err := planes.Delete(ctx, plane.ID); err != nil {
		t.Fatalf("delete plane: %v", err)
	}

	all, err := planes.All(ctx)
	if err != nil {
		t.Fatalf("list planes: %v", err)
	}
	for _, p := range all {
		if p.ID == plane.ID {
			t.Fatal("deleted plane still listed")
		}
	}

	if _, err := parts.ByPlane(ctx, plane.ID); err == nil {
		t.Error("expected parts lookup for a deleted plane to fail")
	}
	remaining, err := parts.All(ctx)
	if err != nil {
		t.Fatalf("list all parts: %v", err)
	}
	for _, p := range remaining {
		if p.ID == part.ID {
			t.Fatal("part survived its plane's deletion")
		}
	}
}

func TestWithPartsAndCurrentUser(t *testing.T) {
	c := newSession(t)
	ctx := context.Background()
	planes := api.NewPlaneService(c)
	parts := api.NewPartService(c)
	auth := api.NewAuthService(c)

	plane, _ := planes.Create(ctx, api.CreatePlaneRequest{TailNumber: "N4", Model: "Airbus A350"})
	if _, err := parts.Add(ctx, plane.ID, api.CreatePartRequest{
		PartName: "APU", SerialNumber: "APU-1", Category: "Power", UsageLimitHours: 500,
	}); err != nil {
		t.Fatalf("add part: %v", err)
	}

	combined, err := planes.WithParts(ctx, plane.ID)
	if err != nil {
		t.Fatalf("with-parts: %v", err)
	}
	if combined.Plane.ID != plane.ID || len(combined.Parts) != 1 {
		t.Fatalf("unexpected combined payload: %+v", combined)
	}

	u := auth.CurrentUser(ctx)
	if u == nil || u.Name != "amy" {
		t.Fatalf("current user = %+v, want the session's user", u)
	}

	byID, err := auth.UserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("user by id: %v", err)
	}
	if byID.Name != "amy" {
		t.Errorf("user %d = %q, want amy", u.ID, byID.Name)
	}

	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if auth.CurrentUser(ctx) != nil {
		t.Error("expected no current user after logout")
	}
}
