package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shirshiz/studio-crm/internal/entity"
	"github.com/shirshiz/studio-crm/internal/infra/http/middleware"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

type PaymentsHandler struct {
	SaveLead *usecase.SaveLeadUseCase
}

func NewPaymentsHandler(saveLead *usecase.SaveLeadUseCase) *PaymentsHandler {
	return &PaymentsHandler{SaveLead: saveLead}
}

type savePaymentsRequest struct {
	Payments []entity.Payment `json:"payments"`
}

type savePaymentsResponse struct {
	Success    bool                       `json:"success"`
	Validation usecase.ScheduleValidation `json:"validation"`
}

type templatesResponse struct {
	Success      bool             `json:"success"`
	Quote        float64          `json:"quote"`
	Full         []entity.Payment `json:"full"`
	Deposit      []entity.Payment `json:"deposit"`
	Installments []entity.Payment `json:"installments"`
}

// HandleSave validates a payment schedule against the lead's quote and
// persists it only when every installment checks out and the schedule
// sums to the quote exactly.
func (h *PaymentsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req savePaymentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.SaveLead.SavePayments(r.Context(), id, req.Payments)
	if err != nil {
		middleware.RecordPaymentValidation("error")
		writeUseCaseError(w, err)
		return
	}

	if !result.Valid {
		middleware.RecordPaymentValidation("rejected")
		writeJSON(w, http.StatusUnprocessableEntity, savePaymentsResponse{Success: false, Validation: result})
		return
	}

	middleware.RecordPaymentValidation("accepted")
	writeJSON(w, http.StatusOK, savePaymentsResponse{Success: true, Validation: result})
}

// HandleTemplates returns the three stock schedules for a quote. Each
// template sums to the quote exactly, rounding drift lands on the last
// installment.
func (h *PaymentsHandler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	quote, err := strconv.ParseFloat(r.URL.Query().Get("quote"), 64)
	if err != nil || quote <= 0 {
		writeError(w, http.StatusBadRequest, "quote must be a positive number")
		return
	}

	now := time.Now()
	writeJSON(w, http.StatusOK, templatesResponse{
		Success:      true,
		Quote:        quote,
		Full:         usecase.FullPaymentTemplate(quote, now),
		Deposit:      usecase.DepositTemplate(quote, now),
		Installments: usecase.InstallmentsTemplate(quote, now),
	})
}
