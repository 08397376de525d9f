// internal/model/well.go
// Tipe data inti: series produksi sumur + forecast

package model

// WellSeries menampung data historis + forecast untuk satu sumur.
// OilForecastBase/GasForecastBase adalah baseline asli dari service;
// tidak boleh dimutasi setelah load (dipakai untuk reset-to-original).
type WellSeries struct {
	Dates           []string  `json:"dates"`
	OilProduction   []float64 `json:"oil_production"`
	GasProduction   []float64 `json:"gas_production"`
	OilForecastBase []float64 `json:"oil_forecast"`
	GasForecastBase []float64 `json:"gas_forecast"`
	ForecastDates   []string  `json:"forecast_dates"`
}

// Adjustments: persentase bertanda untuk scaling forecast.
// Domain [-100,100] dijaga oleh UI, bukan oleh store.
type Adjustments struct {
	OilPct float64 `json:"oil_pct"`
	GasPct float64 `json:"gas_pct"`
}
