// internal/wellsim/server_test.go

package wellsim_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pdp-dashboard/internal/wellsim"
)

func TestWellsEndpoint(t *testing.T) {
	srv := httptest.NewServer(wellsim.NewServer(wellsim.Synthetic(3, 36, 7)).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/wells")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var wells []string
	if err := json.NewDecoder(resp.Body).Decode(&wells); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(wells) != 3 {
		t.Fatalf("expected 3 wells, got %d", len(wells))
	}
}

// 24 bulan terakhir: 12 aktual + 12 forecast, sesuai backend asli.
func TestWellDataShape(t *testing.T) {
	data := wellsim.Synthetic(1, 36, 7)
	srv := httptest.NewServer(wellsim.NewServer(data).Router())
	defer srv.Close()

	wellID := data.WellIDs()[0]
	resp, err := http.Get(srv.URL + "/api/well_data/" + wellID)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Dates         []string  `json:"dates"`
		OilProduction []float64 `json:"oil_production"`
		GasProduction []float64 `json:"gas_production"`
		OilForecast   []float64 `json:"oil_forecast"`
		GasForecast   []float64 `json:"gas_forecast"`
		ForecastDates []string  `json:"forecast_dates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Dates) != 24 || len(body.OilProduction) != 24 || len(body.GasProduction) != 24 {
		t.Fatalf("expected 24 months of history, got %d/%d/%d",
			len(body.Dates), len(body.OilProduction), len(body.GasProduction))
	}
	if len(body.OilForecast) != 12 || len(body.GasForecast) != 12 || len(body.ForecastDates) != 12 {
		t.Fatalf("expected 12-month forecast, got %d/%d/%d",
			len(body.OilForecast), len(body.GasForecast), len(body.ForecastDates))
	}
	// forecast dates = 12 bulan terakhir dari history
	if body.ForecastDates[0] != body.Dates[12] {
		t.Fatalf("forecast dates should start at month 13 of the window: %s vs %s",
			body.ForecastDates[0], body.Dates[12])
	}
	for _, v := range body.OilForecast {
		if v <= 0 {
			t.Fatalf("forecast rate should stay positive, got %v", v)
		}
	}
}

// Sumur < 24 bulan ditolak 400 dengan error JSON.
func TestWellDataInsufficient(t *testing.T) {
	data := wellsim.Synthetic(1, 10, 7)
	srv := httptest.NewServer(wellsim.NewServer(data).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/well_data/" + data.WellIDs()[0])
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == nil || body["error"] == "" {
		t.Fatalf("expected error message, got %+v", body)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well_prod.csv")
	csv := "well_api,prod_date,oil,gas\n" +
		"W-1,2023-02-01,90,280\n" +
		"W-1,2023-01-01,100,300\n" +
		"W-2,2023-01-01,50,120\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, err := wellsim.LoadCSV(path)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	if got := ds.WellIDs(); len(got) != 2 || got[0] != "W-1" {
		t.Fatalf("unexpected wells: %+v", got)
	}
	// harus urut berdasarkan tanggal walau CSV tidak urut
	s := ds.Samples("W-1")
	if len(s) != 2 || !s[0].Date.Before(s[1].Date) || s[0].Oil != 100 {
		t.Fatalf("samples not sorted by date: %+v", s)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("well_api,prod_date,oil\nW-1,2023-01-01,1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := wellsim.LoadCSV(path); err == nil {
		t.Fatalf("expected error for missing gas column")
	}
}
