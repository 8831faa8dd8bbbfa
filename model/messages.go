package model

import "github.com/JasperRosales/aircraft-system-fe/api"

// Messages carry the result of one async API call back into the update
// loop. In-flight calls are never cancelled when superseded; whichever
// message arrives last wins, matching the pull-on-demand model.

type sessionCheckedMsg struct {
	user *api.User
}

type loginDoneMsg struct {
	user *api.User
	err  error
}

type registerDoneMsg struct {
	user *api.User
	err  error
}

type loggedOutMsg struct{}

type planesLoadedMsg struct {
	planes []api.Plane
	err    error
}

// activityPartsMsg is the maintenance-activity pane's per-plane fetch.
type activityPartsMsg struct {
	planeID int
	parts   []api.PlanePart
	err     error
}

// viewPartsMsg feeds the parts view (modal) for one plane.
type viewPartsMsg struct {
	planeID int
	parts   []api.PlanePart
	err     error
}

type allPartsMsg struct {
	parts []api.PlanePart
	err   error
}

type warningPartsMsg struct {
	parts []api.PlanePart
	err   error
}

type planeSavedMsg struct {
	plane *api.Plane
	err   error
}

type planeDeletedMsg struct {
	planeID int
	err     error
}

type partSavedMsg struct {
	planeID int
	part    *api.PlanePart
	err     error
}

type partDeletedMsg struct {
	planeID int
	err     error
}

type bulkUsageDoneMsg struct {
	planeID int
	updated int
	err     error
}
