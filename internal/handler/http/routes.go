package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTracing, h.withTraceID, h.withLogging, withGZip, h.withHashCheck)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.register)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/", h.listUsers)
				r.Get("/me", h.getMe)
				r.Put("/me/password", h.changePassword)
				r.Put("/me/keys", h.changeKeys)
				r.Get("/{id}", h.getUser)
			})
		})

		r.Route("/credentials", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listCredentials)
			r.Post("/", h.addCredential)
			r.Put("/batch", h.updateCredentialBatch)
			r.Get("/group/{group}", h.getCredentialGroup)
			r.Put("/group/{group}", h.updateCredentialGroup)
			r.Delete("/group/{group}", h.deleteCredentialGroup)
			r.Get("/{id}", h.getCredential)
			r.Put("/{id}", h.updateCredential)
			r.Delete("/{id}", h.deleteCredential)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listMyTeams)
			r.Post("/", h.addTeam)
			r.Post("/applications", h.applyToTeam)
			r.Get("/applications/my", h.listMyApplications)
			r.Get("/{id}", h.getTeam)
			r.Get("/{team_id}/applications", h.listTeamApplications)
			r.Post("/{team_id}/applications/{user_id}/respond", h.respondToApplication)
			r.Delete("/{team_id}/members/{user_id}", h.removeTeamMember)
			r.Delete("/{team_id}/membership", h.quitTeam)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
