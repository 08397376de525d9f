// internal/decline/decline.go
// Kurva decline hiperbolik Arps + fitting sederhana.
// Dipakai wellsim untuk menghasilkan forecast ala backend asli.

package decline

import "math"

// Params: qi rate awal, di decline rate awal (per hari), b eksponen hiperbolik.
type Params struct {
	Qi float64
	Di float64
	B  float64
}

// Arps menghitung rate pada waktu t (hari) untuk decline hiperbolik:
//
//	q(t) = qi / (1 + b*di*t)^(1/b)
//
// b mendekati 0 jatuh ke decline eksponensial q(t) = qi * e^(-di*t).
func Arps(t float64, p Params) float64 {
	if p.B < 1e-9 {
		return p.Qi * math.Exp(-p.Di*t)
	}
	return p.Qi / math.Pow(1+p.B*p.Di*t, 1/p.B)
}

// Fit mencari parameter Arps dengan grid search di (0,1] dan b (0,2].
// Untuk tiap pasangan (di,b), qi optimal didapat analitik (model linear
// terhadap qi): qi* = sum(y*f) / sum(f*f) dengan f(t) = q(t; qi=1).
func Fit(timeDays, production []float64) Params {
	n := min(len(timeDays), len(production))
	best := Params{Qi: maxOf(production), Di: 0.1, B: 0.5}
	if n == 0 {
		return best
	}

	bestSSE := math.Inf(1)
	for di := 0.005; di <= 1.0; di += 0.005 {
		for b := 0.05; b <= 2.0; b += 0.05 {
			var sumYF, sumFF float64
			for i := 0; i < n; i++ {
				f := Arps(timeDays[i], Params{Qi: 1, Di: di, B: b})
				sumYF += production[i] * f
				sumFF += f * f
			}
			if sumFF == 0 {
				continue
			}
			qi := sumYF / sumFF
			if qi <= 0 {
				continue
			}
			var sse float64
			for i := 0; i < n; i++ {
				d := production[i] - Arps(timeDays[i], Params{Qi: qi, Di: di, B: b})
				sse += d * d
			}
			if sse < bestSSE {
				bestSSE = sse
				best = Params{Qi: qi, Di: di, B: b}
			}
		}
	}
	return best
}

// Forecast menghasilkan 'months' titik forecast dengan langkah 30 hari
// mulai dari 30 hari setelah sampel terakhir.
func Forecast(timeDays, production []float64, months int) []float64 {
	if months <= 0 || len(timeDays) == 0 {
		return nil
	}
	p := Fit(timeDays, production)
	last := timeDays[len(timeDays)-1]
	out := make([]float64, months)
	for i := 0; i < months; i++ {
		out[i] = Arps(last+30*float64(i+1), p)
	}
	return out
}

// MPE: mean percentage error, (forecast-actual)/actual * 100, dirata-rata.
// Sampel dengan actual == 0 dilewati.
func MPE(actual, forecast []float64) float64 {
	n := min(len(actual), len(forecast))
	var sum float64
	var cnt int
	for i := 0; i < n; i++ {
		if actual[i] == 0 {
			continue
		}
		sum += (forecast[i] - actual[i]) / actual[i]
		cnt++
	}
	if cnt == 0 {
		return 0
	}
	return sum / float64(cnt) * 100
}

func maxOf(xs []float64) float64 {
	m := 0.0
	for _, v := range xs {
		if v > m {
			m = v
		}
	}
	return m
}
