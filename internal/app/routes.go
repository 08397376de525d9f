// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "pdp-dashboard/internal/handlers/http"
)

// RegisterRoutes menambahkan route halaman + API dashboard.
func RegisterRoutes(r *mux.Router) {
	// --- no prefix ---
	r.HandleFunc("/", hh.PageHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)

	// --- /api prefix (dipakai halaman dashboard) ---
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/wells", hh.WellsHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/select/{wellID}", hh.SelectWellHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/adjustments", hh.AdjustmentsHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/reset", hh.ResetHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/series", hh.SeriesHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chart.png", hh.ChartHandler).Methods(http.MethodGet)
	api.HandleFunc("/notices", hh.NoticesHandler).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/notices/{id}/dismiss", hh.DismissNoticeHandler).Methods(http.MethodPost, http.MethodOptions)

	// Preflight catch-all
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)
}
