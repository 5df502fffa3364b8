package commands

import (
  "context"
  "errors"
  "fmt"
  "log"
  "net/http"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/chi/v5/middleware"
  "github.com/prometheus/client_golang/prometheus/promhttp"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  v1 "minter.local/tweet-minter/api/v1"
  "minter.local/tweet-minter/common"
  "minter.local/tweet-minter/models"
)

type ApiHandler struct {
  Db  *gorm.DB
  Ctx context.Context
}

func NewApiCommand() *cli.Command {
  var h ApiHandler
  return &cli.Command{
    Name:  "api",
    Usage: "",
    Before: func(c *cli.Context) error {
      if common.GetEnvString("PINATA_JWT") == "" {
        return errors.New("PINATA_JWT environment variable is not set")
      }
      h = ApiHandler{
        Db:  common.NewDB(),
        Ctx: context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.Run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *ApiHandler) Run() error {
  log.Println("api running...")

  // Idempotent schema initialization. A failure here is logged rather than
  // fatal so the proxy endpoints stay available.
  if err := h.Db.AutoMigrate(
    &models.User{},
    &models.Tweet{},
    &models.Mint{},
    &models.Payment{},
  ); err != nil {
    log.Println("schema initialization failed:", err)
  }

  apiContext := &common.ApiContext{
    Db:  h.Db,
    Ctx: h.Ctx,
  }

  r := chi.NewRouter()
  r.Use(middleware.RequestID)
  r.Use(middleware.Recoverer)
  r.Route("/v1", func(r chi.Router) {
    r.Mount("/scrape-url", v1.NewScrapersRouter(apiContext))
    r.Mount("/fetchprice", v1.NewPricingRouter(apiContext))
    r.Mount("/metadata", v1.NewMetadataRouter(apiContext))
  })
  r.Handle("/metrics", promhttp.Handler())

  err := http.ListenAndServe(
    fmt.Sprintf("127.0.0.1:%d", common.GetEnvInt("MINTER_API_PORT")),
    r,
  )
  if err != nil {
    return err
  }

  return nil
}
