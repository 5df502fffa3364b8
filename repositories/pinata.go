package repositories

import (
  "bytes"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "net"
  "net/http"
  "time"

  "github.com/tidwall/gjson"

  "minter.local/tweet-minter/common"
  "minter.local/tweet-minter/config"
)

type PinataRepository struct{}

type PinResult struct {
  IpfsHash  string
  Timestamp string
}

func (r *PinataRepository) Endpoint() string {
  endpoint := common.GetEnvString("PINATA_API_URL")
  if endpoint == "" {
    endpoint = config.PINATA_PIN_URL
  }
  return endpoint
}

func (r *PinataRepository) Gateway() string {
  gateway := common.GetEnvString("PINATA_GATEWAY")
  if gateway == "" {
    gateway = config.PINATA_GATEWAY_DEFAULT
  }
  return gateway
}

// Upload pins the metadata object and returns the content hash assigned by
// the pinning service.
func (r *PinataRepository) Upload(metadata interface{}) (result *PinResult, err error) {
  tr := &http.Transport{
    DisableKeepAlives: true,
  }
  session := &net.Dialer{}
  tr.DialContext = session.DialContext

  httpClient := &http.Client{
    Transport: tr,
    Timeout:   time.Duration(15) * time.Second,
  }

  payload, err := json.Marshal(metadata)
  if err != nil {
    return
  }

  req, _ := http.NewRequest("POST", r.Endpoint(), bytes.NewReader(payload))
  req.Header.Set("Content-Type", "application/json")
  req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", common.GetEnvString("PINATA_JWT")))

  resp, err := httpClient.Do(req)
  if err != nil {
    return
  }
  defer resp.Body.Close()

  body, _ := io.ReadAll(resp.Body)

  if resp.StatusCode != http.StatusOK {
    detail := gjson.GetBytes(body, "error.details").String()
    if detail == "" {
      detail = string(body)
    }
    if detail == "" {
      detail = resp.Status
    }
    err = errors.New(detail)
    return
  }

  result = &PinResult{
    IpfsHash:  gjson.GetBytes(body, "IpfsHash").String(),
    Timestamp: gjson.GetBytes(body, "Timestamp").String(),
  }
  return
}

// Uri composes the public gateway url for a pinned hash.
func (r *PinataRepository) Uri(ipfsHash string) string {
  return fmt.Sprintf("https://%s/ipfs/%s", r.Gateway(), ipfsHash)
}
