package api

import (
  "encoding/json"
  "net/http"
)

type ResponseHandler struct {
  Writer http.ResponseWriter
}

func (h *ResponseHandler) Out(status int, payload interface{}) {
  h.Writer.Header().Set("Content-Type", "application/json")
  h.Writer.WriteHeader(status)
  json.NewEncoder(h.Writer).Encode(payload)
}

func (h *ResponseHandler) Json(payload interface{}) {
  h.Out(http.StatusOK, payload)
}

// Forward relays an upstream JSON body without re-encoding it.
func (h *ResponseHandler) Forward(status int, body []byte) {
  h.Writer.Header().Set("Content-Type", "application/json")
  h.Writer.WriteHeader(status)
  h.Writer.Write(body)
}

// Error writes the plain proxy error envelope.
func (h *ResponseHandler) Error(status int, message string) {
  h.Out(status, map[string]interface{}{
    "error": message,
  })
}

// Fail writes the metadata error envelope.
func (h *ResponseHandler) Fail(status int, message string) {
  h.Out(status, map[string]interface{}{
    "success": false,
    "error":   message,
  })
}
