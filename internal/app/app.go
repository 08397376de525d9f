// internal/app/app.go
package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pdp-dashboard/internal/config"
	"pdp-dashboard/internal/dashboard"
	hh "pdp-dashboard/internal/handlers/http"
	"pdp-dashboard/internal/model"
	"pdp-dashboard/internal/notify"
	"pdp-dashboard/internal/store"
	"pdp-dashboard/internal/util"
	"pdp-dashboard/internal/wellapi"
)

// App menampung router utama + komponen dashboard.
type App struct {
	Router     *mux.Router
	Store      *store.Store
	Controller *dashboard.Controller
	Notices    *notify.Center
}

// New membuat instance App: wiring store/controller/notices ke handler
// + registrasi semua routes. Daftar sumur diambil sekali saat startup;
// gagal hanya menghasilkan notifikasi (daftar dibiarkan kosong).
func New(cfg *config.Config, log *logrus.Logger) *App {
	if log == nil {
		log = logrus.New()
	}

	st := store.New()
	st.UpdateDisplayOptions(model.DisplayOptions{
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
	})

	notices := notify.NewCenter(cfg.Notify.TTL, util.RealClock{})
	client := wellapi.New(cfg.WellsAPI.Base, cfg.WellsAPI.Timeout, log)
	ctrl := dashboard.NewController(client, st, notices, log)

	// === Inject deps ke handler (pola Set*) ===
	hh.SetStore(st)
	hh.SetNotices(notices)
	hh.SetController(ctrl)
	hh.SetLogger(log)

	r := mux.NewRouter()
	RegisterRoutes(r)

	// Fetch daftar sumur sekali saat startup
	if err := ctrl.LoadWellList(context.Background()); err != nil {
		log.WithError(err).Warn("initial well list fetch failed; selector starts empty")
	}

	return &App{
		Router:     r,
		Store:      st,
		Controller: ctrl,
		Notices:    notices,
	}
}

// Run menjalankan server HTTP.
func (a *App) Run(addr string) {
	log.Printf("dashboard running on %s", addr)
	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
