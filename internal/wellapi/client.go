// internal/wellapi/client.go
// Client HTTP untuk service well-data eksternal.
// Kontrak: GET {base}/api/wells dan GET {base}/api/well_data/{wellID}.

package wellapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"pdp-dashboard/internal/model"
)

type Client struct {
	base   string
	client *http.Client
	log    *logrus.Logger
}

// New membuat client. timeout 0 = tanpa timeout
// (front-end asli juga tidak memasang timeout pada fetch).
func New(base string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		base:   base,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// ListWells mengambil daftar identifier sumur.
func (c *Client) ListWells(ctx context.Context) ([]string, error) {
	var wells []string
	if err := c.getJSON(ctx, c.base+"/api/wells", &wells); err != nil {
		return nil, fmt.Errorf("list wells: %w", err)
	}
	return wells, nil
}

// GetWellData mengambil series produksi + forecast untuk satu sumur.
func (c *Client) GetWellData(ctx context.Context, wellID string) (model.WellSeries, error) {
	var ws model.WellSeries
	u := c.base + "/api/well_data/" + url.PathEscape(wellID)
	if err := c.getJSON(ctx, u, &ws); err != nil {
		return model.WellSeries{}, fmt.Errorf("well data %s: %w", wellID, err)
	}
	return ws, nil
}

// getJSON: GET + decode JSON. Non-2xx dianggap gagal,
// body error tidak diharapkan terstruktur.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"url":    u,
			"status": resp.StatusCode,
		}).Warn("well-data service returned non-2xx")
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
