package api

import (
	"context"
	"fmt"
	"net/http"
)

type PartService struct {
	c *Client
}

func NewPartService(c *Client) *PartService {
	return &PartService{c: c}
}

func (s *PartService) Add(ctx context.Context, planeID int, req CreatePartRequest) (*PlanePart, error) {
	var part PlanePart
	err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/planes/%d/parts", planeID), req, &part, "Failed to add part")
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *PartService) ByPlane(ctx context.Context, planeID int) ([]PlanePart, error) {
	var parts []PlanePart
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/planes/%d/parts", planeID), nil, &parts, "Failed to get parts")
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *PartService) All(ctx context.Context) ([]PlanePart, error) {
	var parts []PlanePart
	err := s.c.do(ctx, http.MethodGet, "/planes/parts", nil, &parts, "Failed to get all parts")
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *PartService) Get(ctx context.Context, partID int) (*PlanePart, error) {
	var part PlanePart
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/planes/parts/%d", partID), nil, &part, "Failed to get part")
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *PartService) Update(ctx context.Context, partID int, req UpdatePartRequest) (*PlanePart, error) {
	var part PlanePart
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/planes/parts/%d", partID), req, &part, "Failed to update part")
	if err != nil {
		return nil, err
	}
	return &part, nil
}

type updateUsageRequest struct {
	UsageHours float64 `json:"usage_hours"`
}

// UpdateUsage sets usage_hours to an absolute value; the server recomputes
// usage_percent. Calling it twice with the same value is a no-op the second
// time.
func (s *PartService) UpdateUsage(ctx context.Context, partID int, usageHours float64) (*PlanePart, error) {
	var part PlanePart
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/planes/parts/%d/usage", partID), updateUsageRequest{UsageHours: usageHours}, &part, "Failed to update part usage")
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *PartService) Delete(ctx context.Context, partID int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/planes/parts/%d", partID), nil, nil, "Failed to delete part")
}

// MaintenanceAlerts returns parts at or above the given usage-percent
// threshold. Callers use 80 for critical-only.
func (s *PartService) MaintenanceAlerts(ctx context.Context, threshold float64) ([]PlanePart, error) {
	return s.alerts(ctx, threshold, "Failed to get maintenance alerts")
}

// WarningParts is the same endpoint with the warning convention (50);
// callers split the result client-side.
func (s *PartService) WarningParts(ctx context.Context, threshold float64) ([]PlanePart, error) {
	return s.alerts(ctx, threshold, "Failed to get warning parts")
}

func (s *PartService) alerts(ctx context.Context, threshold float64, fallback string) ([]PlanePart, error) {
	var parts []PlanePart
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/planes/maintenance/alerts?threshold=%g", threshold), nil, &parts, fallback)
	if err != nil {
		return nil, err
	}
	return parts, nil
}
