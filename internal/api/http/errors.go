package http

import (
	"encoding/json"
	"net/http"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps a domain error kind to its HTTP status. Conflict gets
// its own status so clients can offer a retry with different parameters
// instead of treating the failure as fatal.
func writeError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindInvalidState:
		writeMessage(w, http.StatusBadRequest, err.Error())
	case domain.KindNotFound:
		writeMessage(w, http.StatusNotFound, err.Error())
	case domain.KindForbidden:
		writeMessage(w, http.StatusForbidden, err.Error())
	case domain.KindConflict:
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Unhandled error in request", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
