package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/utsav-fest/utsav-api/internal/auth"
)

func RegisterRoutes(
	r *chi.Mux,
	authHandler *auth.AuthHandler,
	eventsHandler *EventsHandler,
	wizardHandler *WizardHandler,
	teamsHandler *TeamsHandler,
	adminHandler *AdminHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Utsav Fest API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/google/login", authHandler.HandleLogin)
	r.Get("/auth/google/callback", authHandler.HandleCallback)
	r.Post("/auth/logout", authHandler.HandleLogout)
	huma.Get(api, "/me", authHandler.HandleMe, withCookieAuth)

	// Catalog
	huma.Get(api, "/events", eventsHandler.HandleList)
	huma.Get(api, "/events/{id}", eventsHandler.HandleGet)

	// Registered teams (public viewer)
	huma.Get(api, "/events/{id}/teams", teamsHandler.HandleList)
	r.Get("/events/{id}/teams/live", func(w http.ResponseWriter, r *http.Request) {
		teamsHandler.HandleLive(w, r, chi.URLParam(r, "id"))
	})

	// Registration wizard
	huma.Post(api, "/events/{id}/register/start", wizardHandler.HandleStart)
	huma.Post(api, "/register/{wid}/signin", wizardHandler.HandleSignIn, withCookieAuth)
	huma.Post(api, "/register/{wid}/form", wizardHandler.HandleForm)
	huma.Post(api, "/register/{wid}/payment/done", wizardHandler.HandlePaymentDone)
	huma.Post(api, "/register/{wid}/payment/restart", wizardHandler.HandleRestartTimer)
	huma.Post(api, "/register/{wid}/transaction", wizardHandler.HandleTransaction)
	huma.Post(api, "/register/{wid}/close", wizardHandler.HandleClose)
	huma.Get(api, "/register/{wid}", wizardHandler.HandleStatus)

	// Admin dashboard
	huma.Get(api, "/admin/registrations", adminHandler.HandleList, withCookieAuth)
	huma.Patch(api, "/admin/registrations/{event}/{id}/status", adminHandler.HandleSetStatus, withCookieAuth)
}

func withCookieAuth(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}}
}
