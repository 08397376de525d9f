// internal/dashboard/controller.go
// Controller dashboard: orkestrasi fetch daftar sumur + data sumur,
// dorong hasil ke store, dan angkat error sebagai notifikasi transient.

package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pdp-dashboard/internal/model"
	"pdp-dashboard/internal/notify"
	"pdp-dashboard/internal/store"
	"pdp-dashboard/internal/util"
	"pdp-dashboard/internal/wellapi"
)

// LoadState: state machine per sesi pemilihan sumur.
// Failed tidak merusak data Loaded sebelumnya.
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateFailed  LoadState = "failed"
)

// Option adalah pasangan (label, value) untuk kontrol pemilihan sumur.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Controller struct {
	api     *wellapi.Client
	store   *store.Store
	notices *notify.Center
	log     *logrus.Logger

	mu         sync.RWMutex
	state      LoadState
	options    []Option
	activeWell string
}

func NewController(api *wellapi.Client, st *store.Store, nc *notify.Center, log *logrus.Logger) *Controller {
	return &Controller{
		api:     api,
		store:   st,
		notices: nc,
		log:     log,
		state:   StateIdle,
	}
}

// State mengembalikan state load saat ini.
func (c *Controller) State() LoadState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// ActiveWell mengembalikan identifier sumur yang terakhir sukses dimuat.
func (c *Controller) ActiveWell() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeWell
}

// WellOptions mengembalikan daftar sumur sebagai (label, value).
func (c *Controller) WellOptions() []Option {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// LoadWellList mengambil daftar sumur dari service.
// Gagal: notifikasi error, daftar dibiarkan kosong (tidak fatal).
func (c *Controller) LoadWellList(ctx context.Context) error {
	wells, err := c.api.ListWells(ctx)
	if err != nil {
		appErr := util.ListLoadFailure(err.Error())
		c.log.WithError(err).Error("load well list failed")
		c.notices.Error("Failed to load well list. Please try again.")
		return appErr
	}

	opts := make([]Option, 0, len(wells))
	for _, w := range wells {
		opts = append(opts, Option{Label: "Well " + w, Value: w})
	}

	c.mu.Lock()
	c.options = opts
	c.mu.Unlock()

	c.log.WithField("count", len(opts)).Info("well list loaded")
	return nil
}

// LoadWellData memuat data satu sumur.
// Adjustment di-reset ke (0,0) SEBELUM fetch supaya adjustment lama
// tidak terbawa ke sumur baru, berapapun latensi fetch-nya.
// Gagal: notifikasi error, data store sebelumnya tidak disentuh.
func (c *Controller) LoadWellData(ctx context.Context, wellID string) error {
	c.setState(StateLoading)
	c.store.SetAdjustments(0, 0)

	data, err := c.api.GetWellData(ctx, wellID)
	if err != nil {
		c.setState(StateFailed)
		appErr := util.WellDataLoadFailure(err.Error())
		c.log.WithError(err).WithField("well", wellID).Error("load well data failed")
		c.notices.Error("Failed to load data for well " + wellID + ".")
		return appErr
	}

	c.store.LoadWell(data)

	// Jendela sumbu waktu mengikuti data: min/max timestamp gabungan
	// historis + forecast, supaya rentang tanggal sempit maupun lebar
	// sama-sama memenuhi area plot.
	if minT, maxT, ok := TimeWindow(data); ok {
		c.store.UpdateDisplayOptions(model.DisplayOptions{
			TimeAxis: model.TimeAxis{Min: &minT, Max: &maxT},
		})
	}

	c.mu.Lock()
	c.activeWell = wellID
	c.state = StateLoaded
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"well":     wellID,
		"samples":  len(data.Dates),
		"forecast": len(data.ForecastDates),
	}).Info("well data loaded")
	return nil
}

// ResetForecast mengembalikan adjustment ke (0,0) dan
// memberi notifikasi informasional (bukan error).
func (c *Controller) ResetForecast() {
	c.store.SetAdjustments(0, 0)
	c.notices.Info("Forecast reset to original values.")
}

func (c *Controller) setState(s LoadState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// TimeWindow menghitung [min, max] timestamp gabungan dates + forecastDates.
// ok=false jika tidak ada tanggal valid sama sekali.
func TimeWindow(ws model.WellSeries) (minT, maxT time.Time, ok bool) {
	all := make([]string, 0, len(ws.Dates)+len(ws.ForecastDates))
	all = append(all, ws.Dates...)
	all = append(all, ws.ForecastDates...)

	for _, s := range all {
		t, err := model.ParseDate(s)
		if err != nil {
			continue
		}
		if !ok {
			minT, maxT, ok = t, t, true
			continue
		}
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	return minT, maxT, ok
}
