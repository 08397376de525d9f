// internal/handlers/http/notices_handler.go
// Endpoint notifikasi transient (list + dismiss)

package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// NoticesHandler: GET /api/notices -> notice yang masih aktif.
func NoticesHandler(w http.ResponseWriter, r *http.Request) {
	if notices == nil {
		http.Error(w, "notices not configured", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notices.Active())
}

// DismissNoticeHandler: POST /api/notices/{id}/dismiss.
// Idempotent: dismiss ID yang sudah hilang tetap 200.
func DismissNoticeHandler(w http.ResponseWriter, r *http.Request) {
	if notices == nil {
		http.Error(w, "notices not configured", http.StatusServiceUnavailable)
		return
	}
	notices.Dismiss(mux.Vars(r)["id"])
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
}
