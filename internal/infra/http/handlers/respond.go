package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shirshiz/studio-crm/internal/usecase"
)

type errorResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Errors  []usecase.ValidationError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses: itemized
// validation failures are 422, domain rejections 404/400, anything
// technical a generic 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var validation usecase.ValidationErrors
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Success: false,
			Errors:  validation,
		})
		return
	}

	var domain *usecase.DomainError
	if errors.As(err, &domain) {
		status := http.StatusBadRequest
		if domain.Code == "LEAD_NOT_FOUND" {
			status = http.StatusNotFound
		}
		writeError(w, status, domain.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}
