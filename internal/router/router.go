package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/nexus-sdk/internal/api/middlewares"
)

type CustomRouter struct {
	router *chi.Mux
	logger *slog.Logger
	secret []byte
}

func New(secret string, log *slog.Logger) *CustomRouter {
	return &CustomRouter{
		router: chi.NewRouter(),
		logger: log,
		secret: []byte(secret),
	}
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	PurchaseItem(w http.ResponseWriter, r *http.Request)
}

type CreatorHandler interface {
	GetMembers(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	GenerateCode(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	AuthHandler
	PurchaseHandler
	CreatorHandler
	HealthHandler
}

func (cr *CustomRouter) SetRouter(h Handler) {
	cr.router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middlewares.Logging(cr.logger),
	)

	cr.router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authentication(cr.secret, cr.logger))

			r.With(middleware.AllowContentType("application/json")).
				Post("/purchase-flow/purchase-item", h.PurchaseItem)

			r.Route("/creator-program", func(r chi.Router) {
				r.Get("/members", h.GetMembers)
				r.Get("/members/{playerId}", h.GetMember)
				r.Post("/code", h.GenerateCode)
				r.Get("/summary", h.Summary)
			})
		})
	})
	cr.router.Get("/ping", h.Ping)

	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
