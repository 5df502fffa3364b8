package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "minter.local/tweet-minter/api"
  "minter.local/tweet-minter/common"
  "minter.local/tweet-minter/metrics"
  "minter.local/tweet-minter/repositories"
)

type ScrapersHandler struct {
  ApiContext *common.ApiContext
  Repository *repositories.ScraperRepository
}

func NewScrapersRouter(apiContext *common.ApiContext) http.Handler {
  h := ScrapersHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.ScraperRepository{}

  r := chi.NewRouter()
  r.Get("/", h.Do)
  return r
}

func (h *ScrapersHandler) Do(
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

  response.Forward(http.StatusOK, body)
}
