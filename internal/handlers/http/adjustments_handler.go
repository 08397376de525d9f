// internal/handlers/http/adjustments_handler.go
// Endpoint adjustment forecast (slider oil/gas) + reset

package http

import (
	"encoding/json"
	"net/http"
)

type adjustReq struct {
	OilPct float64 `json:"oil_pct"`
	GasPct float64 `json:"gas_pct"`
}

// AdjustmentsHandler: POST /api/adjustments {oil_pct, gas_pct}.
// Handler ini adalah boundary UI, jadi clamping ke [-100,100] terjadi
// di sini; store sendiri menerima nilai apapun.
func AdjustmentsHandler(w http.ResponseWriter, r *http.Request) {
	if st == nil {
		http.Error(w, "store not configured", http.StatusServiceUnavailable)
		return
	}

	var in adjustReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad_input", "invalid JSON body")
		return
	}

	st.SetAdjustments(clampPct(in.OilPct), clampPct(in.GasPct))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st.Adjustments())
}

// ResetHandler: POST /api/reset -> adjustment kembali (0,0) + notice info.
func ResetHandler(w http.ResponseWriter, r *http.Request) {
	if ctrl == nil {
		http.Error(w, "controller not configured", http.StatusServiceUnavailable)
		return
	}
	ctrl.ResetForecast()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st.Adjustments())
}

func clampPct(v float64) float64 {
	if v < -100 {
		return -100
	}
	if v > 100 {
		return 100
	}
	return v
}
