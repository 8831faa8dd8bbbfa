package model

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/applog"
	"github.com/JasperRosales/aircraft-system-fe/stub"
)

// stubServices wires the command layer to an in-memory backend with a
// logged-in session.
func stubServices(t *testing.T) *Services {
	t.Helper()
	srv := httptest.NewServer(stub.New())
	t.Cleanup(srv.Close)

	svc := NewServices(api.NewClient(srv.URL), applog.Discard())
	ctx := context.Background()
	if _, err := svc.Auth.Register(ctx, "amy", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Auth.Login(ctx, "amy", "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return svc
}

func seedPlaneWithParts(t *testing.T, svc *Services, hours ...float64) (*api.Plane, []api.PlanePart) {
	t.Helper()
	ctx := context.Background()
	plane, err := svc.Planes.Create(ctx, api.CreatePlaneRequest{TailNumber: "N700BU", Model: "Boeing 737"})
	if err != nil {
		t.Fatalf("create plane: %v", err)
	}
	names := []string{"Engine", "Prop", "Gear"}
	for i, h := range hours {
		if _, err := svc.Parts.Add(ctx, plane.ID, api.CreatePartRequest{
			PartName:        names[i%len(names)],
			SerialNumber:    names[i%len(names)] + "-1",
			Category:        "Misc",
			UsageHours:      h,
			UsageLimitHours: 100,
		}); err != nil {
			t.Fatalf("add part: %v", err)
		}
	}
	parts, err := svc.Parts.ByPlane(ctx, plane.ID)
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	return plane, parts
}

func TestBulkUsageAddsHoursToEveryPart(t *testing.T) {
	svc := stubServices(t)
	plane, parts := seedPlaneWithParts(t, svc, 10, 20, 30)

	msg := bulkUsageCmd(svc, plane.ID, parts, 5)()
	done, ok := msg.(bulkUsageDoneMsg)
	if !ok {
		t.Fatalf("got %T, want bulkUsageDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("bulk usage failed: %v", done.err)
	}
	if done.updated != 3 {
		t.Fatalf("updated = %d, want 3", done.updated)
	}

	after, err := svc.Parts.ByPlane(context.Background(), plane.ID)
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	want := []float64{15, 25, 35}
	for i, p := range after {
		if p.UsageHours != want[i] {
			t.Errorf("part %s hours = %v, want %v", p.PartName, p.UsageHours, want[i])
		}
		if p.UsagePercent != want[i] { // limit is 100
			t.Errorf("part %s percent = %v, want %v", p.PartName, p.UsagePercent, want[i])
		}
	}
}

func TestBulkUsageAbortsOnFirstFailure(t *testing.T) {
	svc := stubServices(t)
	ctx := context.Background()
	plane, parts := seedPlaneWithParts(t, svc, 10, 20, 30)

	// Make the second request fail; the stale list still carries the part.
	if err := svc.Parts.Delete(ctx, parts[1].ID); err != nil {
		t.Fatalf("delete part: %v", err)
	}

	msg := bulkUsageCmd(svc, plane.ID, parts, 5)()
	done := msg.(bulkUsageDoneMsg)
	if done.err == nil {
		t.Fatal("expected the bulk update to fail partway")
	}
	if done.updated != 1 {
		t.Fatalf("updated = %d, want 1 (first part only)", done.updated)
	}

	// Partial application, no rollback: the first part stayed written,
	// the third was never touched.
	after, err := svc.Parts.ByPlane(ctx, plane.ID)
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	if len(after) != 2 {
		t.Fatalf("got %d parts, want 2", len(after))
	}
	if after[0].UsageHours != 15 {
		t.Errorf("first part hours = %v, want 15", after[0].UsageHours)
	}
	if after[1].UsageHours != 30 {
		t.Errorf("third part hours = %v, want 30 (untouched)", after[1].UsageHours)
	}
}
