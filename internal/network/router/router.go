package router

import (
	"github.com/denmor86/ya-pickupdesk/internal/journal"
	"github.com/denmor86/ya-pickupdesk/internal/network/handlers"
	"github.com/denmor86/ya-pickupdesk/internal/network/middleware"
	"github.com/denmor86/ya-pickupdesk/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	Desk     *services.Desk
	Settings *services.SettingsManager
	Journal  *journal.Journal
}

func NewRouter(desk *services.Desk, settings *services.SettingsManager, journal *journal.Journal) *Router {
	return &Router{
		Desk:     desk,
		Settings: settings,
		Journal:  journal,
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(chimiddleware.Recoverer)
		r.Use(middleware.LogHandle)
		r.Get("/status", handlers.StatusHandler(router.Desk, router.Settings, router.Journal))
		r.Route("/scan", func(r chi.Router) {
			r.Post("/camera", handlers.CameraScanHandler(router.Desk))
			r.Post("/field", handlers.FieldScanHandler(router.Desk))
			r.Post("/intercept", handlers.InterceptScanHandler(router.Desk))
		})
		r.Route("/session", func(r chi.Router) {
			r.Get("/", handlers.GetSessionHandler(router.Desk))
			r.Delete("/", handlers.CloseSessionHandler(router.Desk))
			r.Post("/retry", handlers.RetryHandler(router.Desk))
			r.Post("/issue", handlers.RequestIssueHandler(router.Desk))
			r.Post("/confirm", handlers.ConfirmIssueHandler(router.Desk))
			r.Post("/cancel", handlers.CancelIssueHandler(router.Desk))
		})
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", handlers.GetSettingsHandler(router.Settings))
			r.Put("/", handlers.SaveSettingsHandler(router.Settings))
			r.Post("/probe", handlers.ProbeHandler(router.Settings))
		})
		r.Route("/logs", func(r chi.Router) {
			r.Get("/", handlers.GetLogsHandler(router.Journal))
			r.Get("/file", handlers.ExportLogsHandler(router.Journal))
			r.Delete("/", handlers.ClearLogsHandler(router.Journal))
		})
	})
	return r
}
