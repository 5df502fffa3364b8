package common

import (
  "math"
  "strconv"

  "minter.local/tweet-minter/config"
)

// PriceByImpressions maps a raw view count to a SOL price on a logarithmic
// curve. Missing, unparseable and negative counts price as zero views. Counts
// beyond integer range still price in, they just land on the ceiling.
func PriceByImpressions(viewCount string) float64 {
  views, err := strconv.ParseFloat(viewCount, 64)
  if err != nil || views < 0 || math.IsNaN(views) {
    views = 0
  }
  views = math.Trunc(views)

  price := config.PRICE_FACTOR * math.Log10(views+1)

  if price < config.PRICE_MIN {
    return config.PRICE_MIN
  }
  if price > config.PRICE_MAX {
    return config.PRICE_MAX
  }

  return price
}
