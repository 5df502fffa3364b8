package metrics

import (
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
  ScrapeRequests.Inc()
  ScrapeErrors.Inc()
  PinUploads.Inc()
  MintsSaved.Inc()
  DuplicateMints.Inc()

  req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
  rec := httptest.NewRecorder()
  promhttp.Handler().ServeHTTP(rec, req)
  if rec.Code != http.StatusOK {
    t.Fatalf("metrics status: %d", rec.Code)
  }
  body := rec.Body.String()
  for _, m := range []string{
    "tweet_minter_scrape_requests_total",
    "tweet_minter_scrape_errors_total",
    "tweet_minter_pin_uploads_total",
    "tweet_minter_mints_saved_total",
    "tweet_minter_duplicate_mints_total",
  } {
    if !strings.Contains(body, m) {
      t.Fatalf("expected metric %s in body", m)
    }
  }
}
