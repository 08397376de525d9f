// internal/model/chart.go
// Tipe series chart + opsi tampilan

package model

import "time"

// ChartPoint adalah satu titik (timestamp, value) siap render.
type ChartPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// ChartSeries adalah series bernama, urut berdasarkan waktu.
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// TimeAxis adalah sub-config sumbu horizontal (waktu).
// Min/Max pointer: nil artinya tidak di-set (auto).
type TimeAxis struct {
	Type string     `json:"type,omitempty"` // "time"
	Unit string     `json:"unit,omitempty"` // contoh: "month"
	Min  *time.Time `json:"min,omitempty"`
	Max  *time.Time `json:"max,omitempty"`
}

// DisplayOptions adalah konfigurasi tampilan chart.
type DisplayOptions struct {
	Title      string   `json:"title,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	YAxisLabel string   `json:"y_axis_label,omitempty"`
	TimeAxis   TimeAxis `json:"time_axis,omitempty"`
}

// ParseDate menerima beberapa format tanggal yang mungkin dikirim service
// (YYYY-MM-DD, RFC3339, atau RFC1123 ala Flask jsonify).
func ParseDate(s string) (time.Time, error) {
	layouts := []string{"2006-01-02", time.RFC3339, time.RFC1123, time.RFC1123Z}
	var err error
	for _, l := range layouts {
		var t time.Time
		if t, err = time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
