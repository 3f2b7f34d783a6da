package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"tienlen-server/internal/app"
	"tienlen-server/internal/middleware"
	"tienlen-server/internal/ports/ws"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Logger   logrus.FieldLogger
	Registry *app.Registry
	Hub      *ws.Hub
	Auth     *ws.Authenticator
	WS       ws.HandlerOptions
}

func SetupRoutes(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LogMiddleware(d.Logger))

	r.Get("/healthz", Healthz)
	r.Post("/auth/guest", GuestToken(d.Auth))

	r.Get("/rooms", ListRooms(d.Registry))
	r.Post("/rooms", CreateRoom(d.Registry))

	r.Get("/ws/{matchID}", ws.Handler(d.Logger, d.Auth, d.Registry, d.Hub, d.WS))
	return r
}
