package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"botforge/appctx"
	"botforge/core"
)

const maxRequestBodyBytes = 1 << 20

// ErrorReporter receives server-side failures worth alerting on
type ErrorReporter interface {
	AlertOnError(err error, context string)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSONResponse(w, statusCode, errorResponse{Error: message})
}

// writeServiceError maps a service error to its status code. Precondition
// and not-found errors carry their own message; everything else gets the
// short user-facing message and is reported.
func writeServiceError(w http.ResponseWriter, reporter ErrorReporter, err error, userMessage string) {
	switch {
	case core.IsInvalidInputError(err):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case core.IsNotFoundError(err):
		writeErrorResponse(w, http.StatusNotFound, err.Error())
	case core.IsUpstreamError(err):
		if reporter != nil {
			reporter.AlertOnError(err, userMessage)
		}
		writeErrorResponse(w, http.StatusBadGateway, userMessage)
	default:
		if reporter != nil {
			reporter.AlertOnError(err, userMessage)
		}
		writeErrorResponse(w, http.StatusInternalServerError, userMessage)
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := appctx.GetOwnerID(r.Context())
	if !ok {
		log.Printf("❌ Owner not found in context")
		writeErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return ownerID, true
}
