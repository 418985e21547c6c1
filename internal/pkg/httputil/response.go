package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/ignite/newsletter/internal/pkg/logger"
)

// StatusFailed is the status field of every failure body.
const StatusFailed = "failed"

// FailureResponse is the standard failure envelope.
type FailureResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code. The data is
// serialized and Content-Type is set automatically.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("JSON encode error", "error", err)
	}
}

// OK writes a 200 response with an empty body.
func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// Failed writes a failure envelope with the given status and message.
func Failed(w http.ResponseWriter, status int, message string) {
	JSON(w, status, FailureResponse{Status: StatusFailed, Message: message})
}

// BadRequest writes a 400 failure. The message reaches the client as is.
func BadRequest(w http.ResponseWriter, message string) {
	Failed(w, http.StatusBadRequest, message)
}

// InternalError writes a 500 failure. Logs the real error but returns only
// publicMsg to the client.
func InternalError(w http.ResponseWriter, err error, publicMsg string, fields ...interface{}) {
	if err != nil {
		logger.Error(publicMsg, append(fields, "error", err)...)
	}
	Failed(w, http.StatusInternalServerError, publicMsg)
}
