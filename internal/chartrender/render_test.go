// internal/chartrender/render_test.go

package chartrender_test

import (
	"bytes"
	"testing"
	"time"

	"pdp-dashboard/internal/chartrender"
	"pdp-dashboard/internal/model"
	"pdp-dashboard/internal/store"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func mustPNG(t *testing.T, img []byte) {
	t.Helper()
	if len(img) < 8 || !bytes.HasPrefix(img, pngMagic) {
		t.Fatalf("output is not a PNG (%d bytes)", len(img))
	}
}

func seriesFixture() []model.ChartSeries {
	mk := func(name string, start time.Time, vals ...float64) model.ChartSeries {
		s := model.ChartSeries{Name: name}
		for i, v := range vals {
			s.Points = append(s.Points, model.ChartPoint{
				Time:  start.AddDate(0, i, 0),
				Value: v,
			})
		}
		return s
	}
	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	return []model.ChartSeries{
		mk(store.SeriesOilActual, jan, 100, 90),
		mk(store.SeriesGasActual, jan, 300, 280),
		mk(store.SeriesOilForecast, mar, 80, 75),
		mk(store.SeriesGasForecast, mar, 250, 240),
	}
}

func TestRenderProducesPNG(t *testing.T) {
	opts := store.DefaultDisplayOptions()
	img, err := chartrender.Render(seriesFixture(), opts)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	mustPNG(t, img)
}

// Window sumbu waktu dari display options tidak boleh bikin render gagal.
func TestRenderWithAxisBounds(t *testing.T) {
	opts := store.DefaultDisplayOptions()
	minT := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	maxT := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	opts.TimeAxis.Min = &minT
	opts.TimeAxis.Max = &maxT

	img, err := chartrender.Render(seriesFixture(), opts)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	mustPNG(t, img)
}

// Set series kosong: placeholder putih, bukan error.
func TestRenderEmptySeries(t *testing.T) {
	img, err := chartrender.Render(nil, store.DefaultDisplayOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	mustPNG(t, img)
}

// Series satu titik di-pad supaya go-chart tidak menolak.
func TestRenderSinglePointSeries(t *testing.T) {
	one := []model.ChartSeries{{
		Name: store.SeriesOilActual,
		Points: []model.ChartPoint{{
			Time:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Value: 42,
		}},
	}}
	img, err := chartrender.Render(one, store.DefaultDisplayOptions())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	mustPNG(t, img)
}
