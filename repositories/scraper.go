package repositories

import (
  "fmt"
  "io"
  "net"
  "net/http"
  "net/url"
  "time"

  "minter.local/tweet-minter/common"
  "minter.local/tweet-minter/config"
)

type ScraperRepository struct{}

func (r *ScraperRepository) Base() string {
  base := common.GetEnvString("SCRAPER_API_URL")
  if base == "" {
    base = config.SCRAPER_API_BASE_DEFAULT
  }
  return base
}

// Fetch forwards the target url to the scraper service and hands back the
// upstream status and raw body untouched.
func (r *ScraperRepository) Fetch(target string) (status int, body []byte, err error) {
  tr := &http.Transport{
    DisableKeepAlives: true,
  }
  session := &net.Dialer{}
  tr.DialContext = session.DialContext

  httpClient := &http.Client{
    Transport: tr,
    Timeout:   time.Duration(15) * time.Second,
  }

  apiUrl := fmt.Sprintf(
    "%s/scrape-url?url=%s",
    r.Base(),
    url.QueryEscape(target),
  )
  req, _ := http.NewRequest("GET", apiUrl, nil)
  resp, err := httpClient.Do(req)
  if err != nil {
    return
  }
  defer resp.Body.Close()

  status = resp.StatusCode
  body, err = io.ReadAll(resp.Body)
  return
}
