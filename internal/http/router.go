package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	authHandler "github.com/MrJamesThe3rd/faturamento/internal/http/auth"
	dashboardHandler "github.com/MrJamesThe3rd/faturamento/internal/http/dashboard"
	invoiceHandler "github.com/MrJamesThe3rd/faturamento/internal/http/invoice"
	migrationHandler "github.com/MrJamesThe3rd/faturamento/internal/http/migration"
	"github.com/MrJamesThe3rd/faturamento/internal/http/registry"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
	Verifier       auth.Verifier
}

func New(
	opts Options,
	authV1 *authHandler.Handler,
	registryV1 *registry.Handler,
	invoicesV1 *invoiceHandler.Handler,
	dashboardV1 *dashboardHandler.Handler,
	migrationV1 *migrationHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", authV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(opts.Verifier))

			r.Route("/representatives", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				registryV1.RepresentativeRoutes(r)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				registryV1.CompanyRoutes(r)
			})

			r.Route("/collaborators", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				registryV1.CollaboratorRoutes(r)
			})

			r.Route("/settings", registryV1.SettingsRoutes)
			r.Route("/invoices", invoicesV1.Routes)
			r.Route("/dashboard", dashboardV1.Routes)

			r.Route("/migration", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				migrationV1.Routes(r)
			})
		})
	})

	return router
}
