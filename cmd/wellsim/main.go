// cmd/wellsim/main.go
// Simulator well-data service untuk development lokal.
// Pakai CSV produksi (WELLSIM_CSV) atau data sintetis.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"pdp-dashboard/internal/wellsim"
)

func main() {
	port := os.Getenv("WELLSIM_PORT")
	if port == "" {
		port = "5000"
	}

	var (
		data *wellsim.Dataset
		err  error
	)
	if path := os.Getenv("WELLSIM_CSV"); path != "" {
		data, err = wellsim.LoadCSV(path)
		if err != nil {
			log.Printf("[WARN] load csv failed: %v; falling back to synthetic data", err)
		}
	}
	if data == nil {
		data = wellsim.Synthetic(10, 36, time.Now().UnixNano())
		log.Printf("serving synthetic data for %d wells", len(data.WellIDs()))
	}

	srv := wellsim.NewServer(data)
	log.Printf("wellsim running on :%s", port)
	if err := http.ListenAndServe(":"+port, srv.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
