// internal/wellsim/data.go
// Sumber data simulator: CSV produksi bulanan per sumur,
// atau data sintetis kalau CSV tidak tersedia.

package wellsim

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"
)

type Sample struct {
	Date time.Time
	Oil  float64
	Gas  float64
}

// Dataset: produksi bulanan per well API number, urut berdasarkan tanggal.
type Dataset struct {
	wells map[string][]Sample
}

// WellIDs mengembalikan daftar sumur, urut supaya deterministik.
func (d *Dataset) WellIDs() []string {
	ids := make([]string, 0, len(d.wells))
	for id := range d.wells {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Samples mengembalikan series satu sumur (nil jika tidak dikenal).
func (d *Dataset) Samples(wellID string) []Sample {
	return d.wells[wellID]
}

// LoadCSV membaca file dengan kolom: well_api, prod_date, oil, gas.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv %s has no data rows", path)
	}

	// mapping kolom dari header
	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, need := range []string{"well_api", "prod_date", "oil", "gas"} {
		if _, ok := col[need]; !ok {
			return nil, fmt.Errorf("csv missing column %q", need)
		}
	}

	ds := &Dataset{wells: map[string][]Sample{}}
	for _, row := range rows[1:] {
		date, err := time.Parse("2006-01-02", row[col["prod_date"]])
		if err != nil {
			continue
		}
		oil, _ := strconv.ParseFloat(row[col["oil"]], 64)
		gas, _ := strconv.ParseFloat(row[col["gas"]], 64)
		id := row[col["well_api"]]
		ds.wells[id] = append(ds.wells[id], Sample{Date: date, Oil: oil, Gas: gas})
	}

	for id := range ds.wells {
		s := ds.wells[id]
		sort.Slice(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
	}
	return ds, nil
}

// Synthetic menghasilkan sumur dengan decline hiperbolik + noise,
// cukup untuk menjalankan dashboard tanpa data nyata.
func Synthetic(numWells, months int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{wells: map[string][]Sample{}}
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	for w := 0; w < numWells; w++ {
		id := fmt.Sprintf("42-%03d-%05d", w+1, 10000+rng.Intn(89999))
		qiOil := 800 + rng.Float64()*1200
		qiGas := 2000 + rng.Float64()*4000
		di := 0.002 + rng.Float64()*0.004
		b := 0.4 + rng.Float64()*0.8

		samples := make([]Sample, 0, months)
		for m := 0; m < months; m++ {
			t := float64(m) * 30
			declineAt := func(qi float64) float64 {
				base := qi / math.Pow(1+b*di*t, 1/b)
				return base * (0.9 + 0.2*rng.Float64()) // +-10% noise
			}
			samples = append(samples, Sample{
				Date: start.AddDate(0, m, 0),
				Oil:  declineAt(qiOil),
				Gas:  declineAt(qiGas),
			})
		}
		ds.wells[id] = samples
	}
	return ds
}
