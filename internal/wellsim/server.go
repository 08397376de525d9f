// internal/wellsim/server.go
// Simulator service well-data untuk development/test.
// Perilaku mengikuti backend asli: 24 bulan terakhir per sumur,
// 12 bulan pertama jadi data aktual, forecast Arps untuk 12 sisanya.

package wellsim

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pdp-dashboard/internal/decline"
)

const minMonths = 24

type Server struct {
	data *Dataset
}

func NewServer(data *Dataset) *Server {
	return &Server{data: data}
}

// Router membangun router chi dengan endpoint kontrak well-data.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/api/wells", s.Wells)
	r.Get("/api/well_data/{wellID}", s.WellData)
	return r
}

// Wells: GET /api/wells -> array identifier sumur.
func (s *Server) Wells(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.data.WellIDs())
}

type wellDataResp struct {
	Dates         []string  `json:"dates"`
	OilProduction []float64 `json:"oil_production"`
	GasProduction []float64 `json:"gas_production"`
	OilForecast   []float64 `json:"oil_forecast"`
	GasForecast   []float64 `json:"gas_forecast"`
	ForecastDates []string  `json:"forecast_dates"`
}

// WellData: GET /api/well_data/{wellID}.
// Sumur dengan data < 24 bulan ditolak 400 (sama seperti backend asli).
func (s *Server) WellData(w http.ResponseWriter, r *http.Request) {
	wellID := chi.URLParam(r, "wellID")
	samples := s.data.Samples(wellID)

	if len(samples) < minMonths {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": fmt.Sprintf("Insufficient data for well %s. Only %d records found.", wellID, len(samples)),
		})
		return
	}

	last24 := samples[len(samples)-minMonths:]
	actual := last24[:12]
	forecastPeriod := last24[12:]

	// Fit Arps pada 12 bulan aktual, forecast 12 bulan berikutnya
	timeDays := make([]float64, len(actual))
	oil := make([]float64, len(actual))
	gas := make([]float64, len(actual))
	for i, smp := range actual {
		timeDays[i] = smp.Date.Sub(actual[0].Date).Hours() / 24
		oil[i] = smp.Oil
		gas[i] = smp.Gas
	}
	oilFc := decline.Forecast(timeDays, oil, 12)
	gasFc := decline.Forecast(timeDays, gas, 12)

	resp := wellDataResp{
		OilForecast: oilFc,
		GasForecast: gasFc,
	}
	for _, smp := range last24 {
		resp.Dates = append(resp.Dates, smp.Date.Format("2006-01-02"))
	}
	for _, smp := range last24 {
		resp.OilProduction = append(resp.OilProduction, smp.Oil)
		resp.GasProduction = append(resp.GasProduction, smp.Gas)
	}
	for _, smp := range forecastPeriod {
		resp.ForecastDates = append(resp.ForecastDates, smp.Date.Format("2006-01-02"))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
