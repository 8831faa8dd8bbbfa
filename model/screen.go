package model

import (
	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/applog"
)

// Services bundles the API clients and the logger; every screen model
// holds the same instance.
type Services struct {
	Client *api.Client
	Auth   *api.AuthService
	Planes *api.PlaneService
	Parts  *api.PartService
	Log    *applog.Logger
}

func NewServices(client *api.Client, log *applog.Logger) *Services {
	return &Services{
		Client: client,
		Auth:   api.NewAuthService(client),
		Planes: api.NewPlaneService(client),
		Parts:  api.NewPartService(client),
		Log:    log,
	}
}

type ScreenType int

const (
	ScreenLogin ScreenType = iota
	ScreenRegister
	ScreenUser
	ScreenMechanic
)

type Screen struct {
	Type ScreenType
	User *api.User
}

func LoginScreen() Screen {
	return Screen{Type: ScreenLogin}
}

func RegisterScreen() Screen {
	return Screen{Type: ScreenRegister}
}

// ForUser routes by the role the server returned: mechanics get the
// maintenance dashboard, everyone else the fleet view.
func ForUser(u *api.User) Screen {
	if u != nil && u.Role == "mechanic" {
		return Screen{Type: ScreenMechanic, User: u}
	}
	return Screen{Type: ScreenUser, User: u}
}
