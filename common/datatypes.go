package common

import (
  "encoding/json"
  "strconv"
)

// NumberString renders a decoded JSON value as its canonical string form.
// Tweet ids arrive as either strings or bare numbers depending on the client.
func NumberString(in interface{}) string {
  switch value := in.(type) {
  case string:
    return value
  case float64:
    return strconv.FormatFloat(value, 'f', -1, 64)
  case json.Number:
    return value.String()
  default:
    return ""
  }
}
