// Package respond writes the API's JSON responses. Errors use the
// `{"message": "..."}` body shape shared by every endpoint.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type messageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Message writes a `{"message": ...}` body with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

// Error writes a `{"message": ...}` body and logs the underlying error with
// the request-scoped logger: 5xx at error level, 4xx at warn level.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil && r != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg(message)
	}
	Message(w, status, message)
}
