// internal/store/store.go
// Store state sumur: data mentah, base forecast, dan adjustment.
// Satu-satunya sumber kebenaran untuk data chart turunan.

package store

import (
	"sync"

	"pdp-dashboard/internal/model"
)

// Nama series yang diekspos ke chart.
const (
	SeriesOilActual   = "oil-actual"
	SeriesGasActual   = "gas-actual"
	SeriesOilForecast = "oil-forecast"
	SeriesGasForecast = "gas-forecast"
)

// Forecast hasil scaling, sejajar dengan ForecastDates.
type Forecast struct {
	Oil []float64 `json:"oil"`
	Gas []float64 `json:"gas"`
}

// Store menyimpan state sumur terpilih secara thread-safe.
// Base forecast tidak pernah dimutasi; semua nilai turunan
// dihitung ulang pada setiap pembacaan (tanpa cache).
type Store struct {
	mu sync.RWMutex

	loaded bool
	well   model.WellSeries
	adj    model.Adjustments
	opts   model.DisplayOptions
}

func New() *Store {
	return &Store{
		opts: DefaultDisplayOptions(),
	}
}

// DefaultDisplayOptions: konfigurasi awal chart produksi.
func DefaultDisplayOptions() model.DisplayOptions {
	return model.DisplayOptions{
		Title:      "Production & Forecast",
		Width:      960,
		Height:     420,
		YAxisLabel: "Production (per month)",
		TimeAxis: model.TimeAxis{
			Type: "time",
			Unit: "month",
		},
	}
}

// LoadWell mengganti seluruh data sumur (replace wholesale, tanpa merge).
// Base forecast di-reset dari data baru.
func (s *Store) LoadWell(data model.WellSeries) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.well = data
	s.loaded = true
}

// SetAdjustments meng-update kedua persentase secara atomik.
// Tidak ada validasi di sini; clamping [-100,100] tanggung jawab caller (UI).
func (s *Store) SetAdjustments(oilPct, gasPct float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adj = model.Adjustments{OilPct: oilPct, GasPct: gasPct}
}

// Adjustments mengembalikan pasangan persentase saat ini.
func (s *Store) Adjustments() model.Adjustments {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adj
}

// Loaded true jika sudah ada sumur yang dimuat.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Well mengembalikan salinan data mentah sumur saat ini.
func (s *Store) Well() model.WellSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.well
}

// AdjustedForecast menghitung forecast ter-scale:
//
//	adjusted[i] = base[i] * (1 + pct/100)
//
// Fungsi murni dari base + persentase; O(n), dihitung setiap kali dibaca.
func (s *Store) AdjustedForecast() Forecast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Forecast{
		Oil: scale(s.well.OilForecastBase, s.adj.OilPct),
		Gas: scale(s.well.GasForecastBase, s.adj.GasPct),
	}
}

func scale(base []float64, pct float64) []float64 {
	out := make([]float64, len(base))
	factor := 1 + pct/100
	for i, v := range base {
		out[i] = v * factor
	}
	return out
}

// ChartSeries mengembalikan empat series siap render:
// oil/gas actual (historis) dan oil/gas forecast (hasil adjustment).
// Tanpa sumur dimuat: set series kosong, bukan error — area chart
// harus selalu bisa dirender.
func (s *Store) ChartSeries() []model.ChartSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return []model.ChartSeries{}
	}

	adjOil := scale(s.well.OilForecastBase, s.adj.OilPct)
	adjGas := scale(s.well.GasForecastBase, s.adj.GasPct)

	return []model.ChartSeries{
		{Name: SeriesOilActual, Points: pairUp(s.well.Dates, s.well.OilProduction)},
		{Name: SeriesGasActual, Points: pairUp(s.well.Dates, s.well.GasProduction)},
		{Name: SeriesOilForecast, Points: pairUp(s.well.ForecastDates, adjOil)},
		{Name: SeriesGasForecast, Points: pairUp(s.well.ForecastDates, adjGas)},
	}
}

// pairUp memasangkan tanggal dengan nilai. Tanggal yang tidak bisa
// di-parse dilewati (data malformed = urusan caller, bukan error path).
func pairUp(dates []string, values []float64) []model.ChartPoint {
	n := min(len(dates), len(values))
	pts := make([]model.ChartPoint, 0, n)
	for i := 0; i < n; i++ {
		t, err := model.ParseDate(dates[i])
		if err != nil {
			continue
		}
		pts = append(pts, model.ChartPoint{Time: t, Value: values[i]})
	}
	return pts
}

// DisplayOptions mengembalikan konfigurasi tampilan saat ini.
func (s *Store) DisplayOptions() model.DisplayOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// UpdateDisplayOptions me-merge konfigurasi parsial ke konfigurasi tersimpan.
// Field top-level yang terisi menimpa nilai lama; sub-config TimeAxis
// di-merge per field supaya type/unit sumbu tidak hilang saat caller
// hanya meng-update bounds (lihat MergeDisplayOptions).
func (s *Store) UpdateDisplayOptions(partial model.DisplayOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = MergeDisplayOptions(s.opts, partial)
}

// MergeDisplayOptions menggabungkan partial ke base dengan aturan precedence:
// field partial yang non-zero menang, sisanya dipertahankan dari base.
// TimeAxis di-merge field per field (deep merge), bukan ditimpa utuh.
func MergeDisplayOptions(base, partial model.DisplayOptions) model.DisplayOptions {
	out := base
	if partial.Title != "" {
		out.Title = partial.Title
	}
	if partial.Width > 0 {
		out.Width = partial.Width
	}
	if partial.Height > 0 {
		out.Height = partial.Height
	}
	if partial.YAxisLabel != "" {
		out.YAxisLabel = partial.YAxisLabel
	}
	if partial.TimeAxis.Type != "" {
		out.TimeAxis.Type = partial.TimeAxis.Type
	}
	if partial.TimeAxis.Unit != "" {
		out.TimeAxis.Unit = partial.TimeAxis.Unit
	}
	if partial.TimeAxis.Min != nil {
		out.TimeAxis.Min = partial.TimeAxis.Min
	}
	if partial.TimeAxis.Max != nil {
		out.TimeAxis.Max = partial.TimeAxis.Max
	}
	return out
}
