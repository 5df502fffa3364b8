package config

const (
  SCRAPER_API_BASE_DEFAULT = "http://127.0.0.1:5000"

  PINATA_PIN_URL         = "https://api.pinata.cloud/pinning/pinJSONToIPFS"
  PINATA_GATEWAY_DEFAULT = "gateway.pinata.cloud"

  PRICE_FACTOR = 0.2
  PRICE_MIN    = 0.001
  PRICE_MAX    = 20.0

  MINT_STATUS_PENDING   = "pending"
  MINT_STATUS_COMPLETED = "completed"

  TWEET_ID_TRAIT = "Tweet ID"
)
