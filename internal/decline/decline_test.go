// internal/decline/decline_test.go

package decline_test

import (
	"math"
	"testing"

	"pdp-dashboard/internal/decline"
)

func TestArpsAtZeroEqualsQi(t *testing.T) {
	p := decline.Params{Qi: 1000, Di: 0.01, B: 0.5}
	if got := decline.Arps(0, p); got != 1000 {
		t.Fatalf("q(0): got %v want 1000", got)
	}
}

func TestArpsMonotoneDecline(t *testing.T) {
	p := decline.Params{Qi: 500, Di: 0.005, B: 1.2}
	prev := math.Inf(1)
	for d := 0.0; d <= 720; d += 30 {
		q := decline.Arps(d, p)
		if q <= 0 || q >= prev {
			t.Fatalf("expected strictly decreasing positive rate at t=%v: %v >= %v", d, q, prev)
		}
		prev = q
	}
}

// b -> 0 harus jatuh ke decline eksponensial.
func TestArpsExponentialLimit(t *testing.T) {
	p := decline.Params{Qi: 100, Di: 0.01, B: 0}
	want := 100 * math.Exp(-0.01*100)
	if got := decline.Arps(100, p); math.Abs(got-want) > 1e-9 {
		t.Fatalf("exponential limit: got %v want %v", got, want)
	}
}

// Fit pada data bersih harus mereproduksi kurva dengan error kecil.
func TestFitRecoversCleanCurve(t *testing.T) {
	truth := decline.Params{Qi: 1000, Di: 0.01, B: 0.5}
	var times, prod []float64
	for m := 0; m < 12; m++ {
		d := float64(m) * 30
		times = append(times, d)
		prod = append(prod, decline.Arps(d, truth))
	}

	fit := decline.Fit(times, prod)
	for i, d := range times {
		got := decline.Arps(d, fit)
		rel := math.Abs(got-prod[i]) / prod[i]
		if rel > 0.05 {
			t.Fatalf("fit off at t=%v: got %v want %v (rel %v)", d, got, prod[i], rel)
		}
	}
}

func TestForecastShapeAndDecline(t *testing.T) {
	truth := decline.Params{Qi: 800, Di: 0.008, B: 0.8}
	var times, prod []float64
	for m := 0; m < 12; m++ {
		d := float64(m) * 30
		times = append(times, d)
		prod = append(prod, decline.Arps(d, truth))
	}

	fc := decline.Forecast(times, prod, 12)
	if len(fc) != 12 {
		t.Fatalf("expected 12 forecast points, got %d", len(fc))
	}
	for i := 1; i < len(fc); i++ {
		if fc[i] <= 0 || fc[i] >= fc[i-1] {
			t.Fatalf("forecast should keep declining: fc[%d]=%v fc[%d]=%v", i-1, fc[i-1], i, fc[i])
		}
	}
	// forecast mulai setelah sampel terakhir: harus di bawah rate terakhir
	if fc[0] >= prod[len(prod)-1] {
		t.Fatalf("first forecast point %v should be below last actual %v", fc[0], prod[len(prod)-1])
	}
}

func TestMPE(t *testing.T) {
	actual := []float64{100, 200, 400}
	if got := decline.MPE(actual, actual); got != 0 {
		t.Fatalf("identical arrays: got %v want 0", got)
	}

	forecast := []float64{110, 220, 440} // +10% di semua titik
	if got := decline.MPE(actual, forecast); math.Abs(got-10) > 1e-9 {
		t.Fatalf("uniform +10%%: got %v want 10", got)
	}

	// actual 0 dilewati, bukan division by zero
	if got := decline.MPE([]float64{0, 100}, []float64{50, 90}); math.Abs(got-(-10)) > 1e-9 {
		t.Fatalf("zero-actual skip: got %v want -10", got)
	}
}
