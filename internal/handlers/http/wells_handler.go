// internal/handlers/http/wells_handler.go
// Endpoint daftar sumur + pemilihan sumur

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// WellsHandler: GET /api/wells -> daftar (label, value) dari controller.
func WellsHandler(w http.ResponseWriter, r *http.Request) {
	if ctrl == nil {
		http.Error(w, "controller not configured", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ctrl.WellOptions())
}

// SelectWellHandler: POST /api/select/{wellID} -> muat data sumur terpilih.
// Reset adjustment dilakukan controller secara sinkron sebelum fetch.
func SelectWellHandler(w http.ResponseWriter, r *http.Request) {
	if ctrl == nil {
		http.Error(w, "controller not configured", http.StatusServiceUnavailable)
		return
	}

	wellID := strings.TrimSpace(mux.Vars(r)["wellID"])
	if wellID == "" {
		writeJSONError(w, http.StatusBadRequest, "bad_input", "wellID is required")
		return
	}

	start := time.Now()
	if err := ctrl.LoadWellData(r.Context(), wellID); err != nil {
		// Error sudah diangkat sebagai notifikasi; data lama tetap utuh.
		writeJSONError(w, http.StatusBadGateway, "well_data_load_failed", err.Error())
		return
	}

	logg.WithField("well", wellID).WithField("took", time.Since(start).String()).
		Debug("well selected")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"well":  wellID,
		"state": ctrl.State(),
	})
}

func writeJSONError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error":   code,
		"message": msg,
	})
}
