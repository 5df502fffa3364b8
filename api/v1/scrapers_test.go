package v1

import (
  "fmt"
  "net/http"
  "net/http/httptest"
  "net/url"
  "strings"
  "sync"
  "testing"

  "minter.local/tweet-minter/common"
)

func TestScrapeMissingUrl(t *testing.T) {
  upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    t.Error("upstream called despite missing url parameter")
  }))
  defer upstream.Close()
  t.Setenv("SCRAPER_API_URL", upstream.URL)

  router := NewScrapersRouter(&common.ApiContext{})
  req := httptest.NewRequest(http.MethodGet, "/", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", rec.Code)
  }
  if !strings.Contains(rec.Body.String(), "Missing url query parameter") {
    t.Fatalf("unexpected body: %s", rec.Body.String())
  }
}

func TestScrapeRelaysUpstreamBody(t *testing.T) {
  body := `{"data":{"view_count":"7","likes":2}}`
  upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    if got := r.URL.Query().Get("url"); got != "https://x.com/s/1" {
      t.Errorf("unexpected forwarded url: %s", got)
    }
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(body))
  }))
  defer upstream.Close()
  t.Setenv("SCRAPER_API_URL", upstream.URL)

  router := NewScrapersRouter(&common.ApiContext{})
  req := httptest.NewRequest(http.MethodGet, "/?url=https%3A%2F%2Fx.com%2Fs%2F1", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d", rec.Code)
  }
  if rec.Body.String() != body {
    t.Fatalf("body not relayed verbatim: %s", rec.Body.String())
  }
}

func TestScrapeMirrorsUpstreamStatus(t *testing.T) {
  upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusNotFound)
  }))
  defer upstream.Close()
  t.Setenv("SCRAPER_API_URL", upstream.URL)

  router := NewScrapersRouter(&common.ApiContext{})
  req := httptest.NewRequest(http.MethodGet, "/?url=https%3A%2F%2Fx.com%2Fs%2F1", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusNotFound {
    t.Fatalf("expected mirrored 404, got %d", rec.Code)
  }
  if !strings.Contains(rec.Body.String(), "Error fetching scraper data") {
    t.Fatalf("unexpected body: %s", rec.Body.String())
  }
}

func TestScrapeConcurrentRequests(t *testing.T) {
  upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    fmt.Fprintf(w, `{"data":{"url":%q}}`, r.URL.Query().Get("url"))
  }))
  defer upstream.Close()
  t.Setenv("SCRAPER_API_URL", upstream.URL)

  router := NewScrapersRouter(&common.ApiContext{})

  var wg sync.WaitGroup
  for i := 0; i < 8; i++ {
    wg.Add(1)
    go func(i int) {
      defer wg.Done()
      target := fmt.Sprintf("https://x.com/s/%d", i)
      req := httptest.NewRequest(http.MethodGet, "/?url="+url.QueryEscape(target), nil)
      rec := httptest.NewRecorder()
      router.ServeHTTP(rec, req)
      if rec.Code != http.StatusOK {
        t.Errorf("request %d: expected 200, got %d", i, rec.Code)
        return
      }
      if !strings.Contains(rec.Body.String(), target) {
        t.Errorf("request %d received another caller's body: %s", i, rec.Body.String())
      }
    }(i)
  }
  wg.Wait()
}

func TestScrapeTransportError(t *testing.T) {
  upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
  t.Setenv("SCRAPER_API_URL", upstream.URL)
  upstream.Close()

  router := NewScrapersRouter(&common.ApiContext{})
  req := httptest.NewRequest(http.MethodGet, "/?url=https%3A%2F%2Fx.com%2Fs%2F1", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusInternalServerError {
    t.Fatalf("expected 500, got %d", rec.Code)
  }
  if !strings.Contains(rec.Body.String(), "Internal server error") {
    t.Fatalf("unexpected body: %s", rec.Body.String())
  }
}
