// internal/handlers/http/series_handler.go
// Endpoint data chart turunan (JSON) untuk halaman dashboard

package http

import (
	"encoding/json"
	"net/http"
)

// SeriesHandler: GET /api/series -> empat series siap render + state.
// Tanpa sumur dimuat: array kosong, bukan error.
func SeriesHandler(w http.ResponseWriter, r *http.Request) {
	if st == nil || ctrl == nil {
		http.Error(w, "store not configured", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"series":      st.ChartSeries(),
		"adjustments": st.Adjustments(),
		"forecast":    st.AdjustedForecast(),
		"state":       ctrl.State(),
		"well":        ctrl.ActiveWell(),
	})
}
