package v1

import (
  "encoding/json"
  "errors"
  "log"
  "net/http"

  "github.com/go-chi/chi/v5"
  "gorm.io/datatypes"

  "minter.local/tweet-minter/api"
  "minter.local/tweet-minter/common"
  "minter.local/tweet-minter/config"
  "minter.local/tweet-minter/metrics"
  "minter.local/tweet-minter/repositories"
)

type MetadataHandler struct {
  ApiContext       *common.ApiContext
  TweetsRepository *repositories.TweetsRepository
  MintsRepository  *repositories.MintsRepository
  PinataRepository *repositories.PinataRepository
}

type TweetData struct {
  TweetID   string `json:"tweet_id"`
  Likes     int    `json:"likes"`
  Retweets  int    `json:"retweets"`
  Replies   int    `json:"replies"`
  ViewCount int    `json:"view_count"`
}

type UploadRequest struct {
  Metadata      datatypes.JSONMap `json:"metadata"`
  TweetID       string            `json:"tweetId"`
  WalletAddress string            `json:"walletAddress"`
  TweetData     *TweetData        `json:"tweetData"`
}

type SaveMintRequest struct {
  TweetID     string     `json:"tweetId"`
  MintAddress string     `json:"mintAddress"`
  OwnerWallet string     `json:"ownerWallet"`
  MetadataURI string     `json:"metadataUri"`
  PriceSol    *float64   `json:"priceSol"`
  TxSignature string     `json:"txSignature"`
  TweetData   *TweetData `json:"tweetData"`
}

func NewMetadataRouter(apiContext *common.ApiContext) http.Handler {
  h := MetadataHandler{
    ApiContext: apiContext,
  }
  h.TweetsRepository = &repositories.TweetsRepository{
    Db: h.ApiContext.Db,
  }
  h.MintsRepository = &repositories.MintsRepository{
    Db: h.ApiContext.Db,
  }
  h.PinataRepository = &repositories.PinataRepository{}

  r := chi.NewRouter()
  r.Post("/upload", h.Upload)
  r.Post("/save-mint", h.SaveMint)
  return r
}

// extractTweetID resolves the tweet id from the explicit field, the nested
// tweet data, or a metadata attribute named "Tweet ID", in that order.
func extractTweetID(req *UploadRequest) string {
  if req.TweetID != "" {
    return req.TweetID
  }
  if req.TweetData != nil && req.TweetData.TweetID != "" {
    return req.TweetData.TweetID
  }
  attributes, ok := req.Metadata["attributes"].([]interface{})
  if !ok {
    return ""
  }
  for _, item := range attributes {
    attribute, ok := item.(map[string]interface{})
    if !ok {
      continue
    }
    if attribute["trait_type"] == config.TWEET_ID_TRAIT {
      return common.NumberString(attribute["value"])
    }
  }
  return ""
}

func (h *MetadataHandler) Upload(
  w http.ResponseWriter,
  r *http.Request,
) {
  // Scoped per request, the handler struct is shared across requests.
  response := &api.ResponseHandler{
    Writer: w,
  }

  var req UploadRequest
  if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
    response.Fail(http.StatusBadRequest, "Invalid request body")
    return
  }

  if req.Metadata == nil {
    response.Fail(http.StatusBadRequest, "Metadata is required")
    return
  }

  name, _ := req.Metadata["name"].(string)
  description, _ := req.Metadata["description"].(string)
  if name == "" || description == "" {
    response.Fail(http.StatusBadRequest, "Metadata must include name and description")
    return
  }

  tweetID := extractTweetID(&req)
  if tweetID == "" {
    response.Fail(http.StatusBadRequest, "Tweet ID is required")
    return
  }

  log.Println("checking if tweet already exists:", tweetID)

  if tweet := h.TweetsRepository.Get(tweetID); tweet != nil {
    metrics.DuplicateMints.Inc()
    response.Out(http.StatusConflict, map[string]interface{}{
      "success": false,
      "error":   "Tweet already minted as NFT",
      "data": map[string]interface{}{
        "tweetId":     tweet.TweetID,
        "mintAddress": tweet.MintAddress,
        "metadataUri": tweet.MetadataURI,
      },
    })
    return
  }

  result, err := h.PinataRepository.Upload(req.Metadata)
  if err != nil {
    log.Println("metadata upload failed:", err)
    response.Fail(http.StatusInternalServerError, err.Error())
    return
  }

  metrics.PinUploads.Inc()

  uri := h.PinataRepository.Uri(result.IpfsHash)
  log.Println("metadata uploaded:", uri)

  response.Json(map[string]interface{}{
    "success":   true,
    "uri":       uri,
    "ipfsHash":  result.IpfsHash,
    "timestamp": result.Timestamp,
    "tweetId":   tweetID,
  })
}

func (h *MetadataHandler) SaveMint(
  w http.ResponseWriter,
  r *http.Request,
) {
  // Scoped per request, the handler struct is shared across requests.
  response := &api.ResponseHandler{
    Writer: w,
  }

  var req SaveMintRequest
  if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
    response.Fail(http.StatusBadRequest, "Invalid request body")
    return
  }

  if req.TweetID == "" || req.MintAddress == "" || req.OwnerWallet == "" || req.MetadataURI == "" {
    response.Fail(
      http.StatusBadRequest,
      "Missing required fields: tweetId, mintAddress, ownerWallet, metadataUri",
    )
    return
  }

  params := &repositories.MintParams{
    TweetID:     req.TweetID,
    MintAddress: req.MintAddress,
    OwnerWallet: req.OwnerWallet,
    MetadataURI: req.MetadataURI,
    PriceSol:    req.PriceSol,
    TxSignature: req.TxSignature,
  }
  if req.TweetData != nil {
    params.Likes = req.TweetData.Likes
    params.Retweets = req.TweetData.Retweets
    params.Replies = req.TweetData.Replies
    params.Views = req.TweetData.ViewCount
  }

  mintID, userID, err := h.MintsRepository.Save(params)
  if errors.Is(err, repositories.ErrTweetAlreadyMinted) {
    metrics.DuplicateMints.Inc()
    response.Fail(http.StatusConflict, "Tweet already minted")
    return
  }
  if err != nil {
    log.Println("error saving mint data:", err)
    response.Fail(http.StatusInternalServerError, err.Error())
    return
  }

  metrics.MintsSaved.Inc()
  log.Println("mint record created:", mintID)

  response.Out(http.StatusCreated, map[string]interface{}{
    "success": true,
    "message": "Mint data saved successfully",
    "data": map[string]interface{}{
      "mintId":      mintID,
      "tweetId":     req.TweetID,
      "mintAddress": req.MintAddress,
      "userId":      userID,
    },
  })
}
