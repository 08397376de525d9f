// internal/handlers/http/chart_handler.go
// Endpoint render chart PNG server-side

package http

import (
	"net/http"

	"pdp-dashboard/internal/chartrender"
)

// ChartHandler: GET /api/chart.png -> chart produksi + forecast.
// Store kosong menghasilkan placeholder putih (tetap 200).
func ChartHandler(w http.ResponseWriter, r *http.Request) {
	if st == nil {
		http.Error(w, "store not configured", http.StatusServiceUnavailable)
		return
	}

	img, err := chartrender.Render(st.ChartSeries(), st.DisplayOptions())
	if err != nil {
		logg.WithError(err).Error("chart render failed")
		writeJSONError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(img)
}
