// internal/chartrender/render.go
// Render chart produksi ke PNG dengan go-chart.
// Sumbu waktu memakai bounds dari DisplayOptions (data-driven window).

package chartrender

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pdp-dashboard/internal/model"
	"pdp-dashboard/internal/store"
)

// Warna mengikuti plot asli: oil hijau, gas merah;
// historis sebagai titik, forecast sebagai garis.
var seriesStyles = map[string]chart.Style{
	store.SeriesOilActual:   pointStyle(chart.ColorGreen),
	store.SeriesGasActual:   pointStyle(chart.ColorRed),
	store.SeriesOilForecast: lineStyle(chart.ColorGreen),
	store.SeriesGasForecast: lineStyle(chart.ColorRed),
}

func pointStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    c,
	}
}

func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: c,
	}
}

// Render menggambar series ke PNG. Set series kosong menghasilkan
// placeholder putih, bukan error — area chart selalu bisa dirender.
func Render(series []model.ChartSeries, opts model.DisplayOptions) ([]byte, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 960
	}
	if h <= 0 {
		h = 420
	}

	var out []chart.Series
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = p.Time
			ys[i] = p.Value
		}
		// go-chart butuh minimal dua nilai X per series
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		st, okStyle := seriesStyles[s.Name]
		if !okStyle {
			st = lineStyle(chart.ColorAlternateGray)
		}
		out = append(out, chart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}

	if len(out) == 0 {
		return blank(w, h)
	}

	xAxis := chart.XAxis{Name: "Date"}
	if opts.TimeAxis.Min != nil && opts.TimeAxis.Max != nil && opts.TimeAxis.Max.After(*opts.TimeAxis.Min) {
		xAxis.Range = &chart.ContinuousRange{
			Min: float64(opts.TimeAxis.Min.UnixNano()),
			Max: float64(opts.TimeAxis.Max.UnixNano()),
		}
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  w,
		Height: h,
		XAxis:  xAxis,
		YAxis:  chart.YAxis{Name: opts.YAxisLabel},
		Series: out,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blank menghasilkan PNG putih polos sebagai placeholder.
func blank(w, h int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
