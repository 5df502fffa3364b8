package v1

import (
  "encoding/json"
  "net/http"

  "github.com/go-chi/chi/v5"
  "github.com/tidwall/gjson"

  "minter.local/tweet-minter/api"
  "minter.local/tweet-minter/common"
  "minter.local/tweet-minter/metrics"
  "minter.local/tweet-minter/repositories"
)

type PricingHandler struct {
  ApiContext *common.ApiContext
  Repository *repositories.ScraperRepository
}

func NewPricingRouter(apiContext *common.ApiContext) http.Handler {
  h := PricingHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.ScraperRepository{}

  r := chi.NewRouter()
  r.Get("/", h.Do)
  return r
}

func (h *PricingHandler) Do(
  w http.ResponseWriter,
  r *http.Request,
) {
  // Scoped per request, the handler struct is shared across requests.
  response := &api.ResponseHandler{
    Writer: w,
  }

  target := r.URL.Query().Get("url")
  if target == "" {
    response.Error(http.StatusBadRequest, "Missing url query parameter")
    return
  }

  metrics.ScrapeRequests.Inc()

  status, body, err := h.Repository.Fetch(target)
  if err != nil {
    metrics.ScrapeErrors.Inc()
    response.Error(http.StatusInternalServerError, "Internal server error")
    return
  }

  if status < 200 || status > 299 {
    metrics.ScrapeErrors.Inc()
    response.Error(status, "Error fetching scraper data: "+http.StatusText(status))
    return
  }

  data := gjson.GetBytes(body, "data")
  viewCount := data.Get("view_count").String()
  price := common.PriceByImpressions(viewCount)

  metricsRaw := json.RawMessage("{}")
  if data.Exists() {
    metricsRaw = json.RawMessage(data.Raw)
  }

  response.Json(map[string]interface{}{
    "metrics": metricsRaw,
    "price":   price,
  })
}
