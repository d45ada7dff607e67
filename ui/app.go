// Package ui is the presentation layer: a JSON API that merely calls into
// the engine. Each request carries the full filter specification, so every
// recompute is an explicit pure function call and no view state lives on the
// server.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goattrition/domain/table"
	"goattrition/ports"
)

// App represents the dashboard API application
type App struct {
	router *chi.Mux

	dataset        *table.Dataset
	attritionField string
	previewRows    int
	filters        ports.FilterRepository
}

// Config holds API application configuration
type Config struct {
	Dataset        *table.Dataset
	AttritionField string
	PreviewRows    int
	// Filters is optional; saved-filter routes are mounted only when set
	Filters ports.FilterRepository
}

// NewApp creates a new API application over an immutable dataset
func NewApp(config Config) *App {
	previewRows := config.PreviewRows
	if previewRows <= 0 {
		previewRows = 5
	}

	app := &App{
		router:         chi.NewRouter(),
		dataset:        config.Dataset,
		attritionField: config.AttritionField,
		previewRows:    previewRows,
		filters:        config.Filters,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/api/dataset", a.handleDataset)

	// Each view route accepts a filter spec body and recomputes from scratch
	a.router.Post("/api/views/summary", a.handleSummary)
	a.router.Post("/api/views/distribution", a.handleDistribution)
	a.router.Post("/api/views/crosstab", a.handleCrossTab)
	a.router.Post("/api/views/numeric-summary", a.handleNumericSummary)
	a.router.Post("/api/views/histogram", a.handleHistogram)
	a.router.Post("/api/views/boxplot", a.handleBoxplot)
	a.router.Post("/api/views/correlation", a.handleCorrelation)
	a.router.Post("/api/views/export", a.handleExport)

	if a.filters != nil {
		a.router.Route("/api/filters", func(r chi.Router) {
			r.Get("/", a.handleListFilters)
			r.Post("/", a.handleSaveFilter)
			r.Get("/{id}", a.handleGetFilter)
			r.Delete("/{id}", a.handleDeleteFilter)
		})
	}
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}
