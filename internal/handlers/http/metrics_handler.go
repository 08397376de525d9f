// internal/handlers/http/metrics_handler.go
// Handler untuk metrics format Prometheus sederhana

package http

import (
	"fmt"
	"net/http"
)

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")

	if ctrl != nil {
		fmt.Fprintf(w, "# HELP wells_available number of wells in the selector\n# TYPE wells_available gauge\nwells_available %d\n",
			len(ctrl.WellOptions()))
	}
	if st != nil {
		loaded := 0
		if st.Loaded() {
			loaded = 1
		}
		fmt.Fprintf(w, "# HELP well_loaded 1 if a well is currently loaded\n# TYPE well_loaded gauge\nwell_loaded %d\n", loaded)
	}
}
