package rest

import (
	"encoding/json"
	"net/http"
)

// Stable machine-readable error codes.
const (
	codeBadRequest     = "bad_request"
	codeRecordNotFound = "record_not_found"
	codeTurnInFlight   = "turn_in_flight"
	codeInternalError  = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
