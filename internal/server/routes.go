package server

import (
	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the conversion API routes on router.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/health", h.Health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/units", h.Units)
		r.Get("/chinese-units", h.ChineseUnits)
		r.Get("/units/presets", h.Presets)
		r.Get("/units/presets/{name}", h.PresetByName)
		r.Get("/units/compatibility", h.Compatibility)

		r.Post("/convert", h.Convert)
		r.Post("/unit-system", h.UnitSystem)
		r.Post("/quick-convert", h.QuickConvert)
		r.Post("/unit-info", h.UnitInfo)
	})
}
