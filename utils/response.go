package utils

import (
	"encoding/json"
	"net/http"

	"triviaapp/models"
)

func SendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func SendError(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, models.ErrorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	})
}
