package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Put-Option-Screener-Backend/internal/api/middleware"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/config"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/service"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	analysisService *service.AnalysisService,
	settingsService *service.SettingsService,
	u *universe.Universe,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/analyze", func(r chi.Router) {
			analyzeHandler := handlers.NewAnalyzeHandler(analysisService, settingsService)
			r.Get("/", analyzeHandler.AnalyzeAll)
			r.Get("/{symbol}", analyzeHandler.AnalyzeSymbol)
		})

		universeHandler := handlers.NewUniverseHandler(u)
		r.Get("/universe", universeHandler.List)

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(settingsService)
			r.Get("/", settingsHandler.Get)
			r.Put("/", settingsHandler.Update)
		})
	})

	return r
}
