package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"transportledger/services"
)

// ApiResponse is the envelope of every JSON response.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[HTTP] failed to encode response: %v", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, ApiResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: message})
}

// writeError maps err to a status code by its kind and writes the envelope.
func writeError(w http.ResponseWriter, err error) {
	kind := services.KindOf(err)
	status := statusForKind(kind)
	if status >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s error: %v", kind, err)
	}
	writeJSON(w, status, ApiResponse{Success: false, Code: kind, Error: err.Error()})
}

func statusForKind(kind string) int {
	switch kind {
	case services.KindValidation, services.KindParse:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Code: services.KindValidation, Error: message})
}
