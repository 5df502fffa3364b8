package metrics

import (
  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
  ScrapeRequests = promauto.NewCounter(prometheus.CounterOpts{
    Name: "tweet_minter_scrape_requests_total",
    Help: "Requests forwarded to the scraper service.",
  })
  ScrapeErrors = promauto.NewCounter(prometheus.CounterOpts{
    Name: "tweet_minter_scrape_errors_total",
    Help: "Scraper calls that failed or returned a non-success status.",
  })
  PinUploads = promauto.NewCounter(prometheus.CounterOpts{
    Name: "tweet_minter_pin_uploads_total",
    Help: "Metadata objects pinned to IPFS.",
  })
  MintsSaved = promauto.NewCounter(prometheus.CounterOpts{
    Name: "tweet_minter_mints_saved_total",
    Help: "Mint transactions committed.",
  })
  DuplicateMints = promauto.NewCounter(prometheus.CounterOpts{
    Name: "tweet_minter_duplicate_mints_total",
    Help: "Mint or upload attempts rejected as duplicates.",
  })
)
