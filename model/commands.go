package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/metrics"
)

func checkSessionCmd(svc *Services) tea.Cmd {
	return func() tea.Msg {
		return sessionCheckedMsg{user: svc.Auth.CurrentUser(context.Background())}
	}
}

func loginCmd(svc *Services, name, password string) tea.Cmd {
	return func() tea.Msg {
		u, err := svc.Auth.Login(context.Background(), name, password)
		return loginDoneMsg{user: u, err: err}
	}
}

func registerCmd(svc *Services, name, password string) tea.Cmd {
	return func() tea.Msg {
		u, err := svc.Auth.Register(context.Background(), name, password)
		return registerDoneMsg{user: u, err: err}
	}
}

func logoutCmd(svc *Services) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Auth.Logout(context.Background()); err != nil {
			svc.Log.Warn("logout: %v", err)
		}
		return loggedOutMsg{}
	}
}

func loadPlanesCmd(svc *Services) tea.Cmd {
	return func() tea.Msg {
		planes, err := svc.Planes.All(context.Background())
		return planesLoadedMsg{planes: planes, err: err}
	}
}

func loadActivityPartsCmd(svc *Services, planeID int) tea.Cmd {
	return func() tea.Msg {
		parts, err := svc.Parts.ByPlane(context.Background(), planeID)
		return activityPartsMsg{planeID: planeID, parts: parts, err: err}
	}
}

func loadViewPartsCmd(svc *Services, planeID int) tea.Cmd {
	return func() tea.Msg {
		parts, err := svc.Parts.ByPlane(context.Background(), planeID)
		return viewPartsMsg{planeID: planeID, parts: parts, err: err}
	}
}

func loadAllPartsCmd(svc *Services) tea.Cmd {
	return func() tea.Msg {
		parts, err := svc.Parts.All(context.Background())
		return allPartsMsg{parts: parts, err: err}
	}
}

func loadWarningPartsCmd(svc *Services) tea.Cmd {
	return func() tea.Msg {
		parts, err := svc.Parts.WarningParts(context.Background(), metrics.WarningThreshold)
		return warningPartsMsg{parts: parts, err: err}
	}
}

func createPlaneCmd(svc *Services, req api.CreatePlaneRequest) tea.Cmd {
	return func() tea.Msg {
		plane, err := svc.Planes.Create(context.Background(), req)
		return planeSavedMsg{plane: plane, err: err}
	}
}

func updatePlaneCmd(svc *Services, id int, req api.UpdatePlaneRequest) tea.Cmd {
	return func() tea.Msg {
		plane, err := svc.Planes.Update(context.Background(), id, req)
		return planeSavedMsg{plane: plane, err: err}
	}
}

func deletePlaneCmd(svc *Services, id int) tea.Cmd {
	return func() tea.Msg {
		err := svc.Planes.Delete(context.Background(), id)
		return planeDeletedMsg{planeID: id, err: err}
	}
}

func addPartCmd(svc *Services, planeID int, req api.CreatePartRequest) tea.Cmd {
	return func() tea.Msg {
		part, err := svc.Parts.Add(context.Background(), planeID, req)
		return partSavedMsg{planeID: planeID, part: part, err: err}
	}
}

func updatePartCmd(svc *Services, planeID, partID int, req api.UpdatePartRequest) tea.Cmd {
	return func() tea.Msg {
		part, err := svc.Parts.Update(context.Background(), partID, req)
		return partSavedMsg{planeID: planeID, part: part, err: err}
	}
}

func deletePartCmd(svc *Services, planeID, partID int) tea.Cmd {
	return func() tea.Msg {
		err := svc.Parts.Delete(context.Background(), partID)
		return partDeletedMsg{planeID: planeID, err: err}
	}
}

// bulkUsageCmd adds hours to every part of one plane, one sequential
// request per part. The first failure aborts the rest; parts already
// written stay written (no rollback).
func bulkUsageCmd(svc *Services, planeID int, parts []api.PlanePart, hoursToAdd float64) tea.Cmd {
	return func() tea.Msg {
		updated := 0
		for _, p := range parts {
			if _, err := svc.Parts.UpdateUsage(context.Background(), p.ID, p.UsageHours+hoursToAdd); err != nil {
				return bulkUsageDoneMsg{planeID: planeID, updated: updated, err: err}
			}
			updated++
		}
		return bulkUsageDoneMsg{planeID: planeID, updated: updated}
	}
}
