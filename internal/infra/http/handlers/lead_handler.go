package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shirshiz/studio-crm/internal/entity"
	"github.com/shirshiz/studio-crm/internal/infra/http/middleware"
	"github.com/shirshiz/studio-crm/internal/snapshot"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

type LeadHandler struct {
	SaveLead *usecase.SaveLeadUseCase
	Holder   *snapshot.Holder
}

func NewLeadHandler(saveLead *usecase.SaveLeadUseCase, holder *snapshot.Holder) *LeadHandler {
	return &LeadHandler{SaveLead: saveLead, Holder: holder}
}

type leadListResponse struct {
	Success bool          `json:"success"`
	Total   int           `json:"total"`
	Leads   []entity.Lead `json:"leads"`
}

type leadResponse struct {
	Success bool        `json:"success"`
	Lead    entity.Lead `json:"lead"`
}

// HandleList serves the current snapshot, filtered and sorted by the
// query string. It never touches the database.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := usecase.LeadQuery{
		Search:  q.Get("search"),
		Status:  q.Get("status"),
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
	}

	leads := usecase.FilterLeads(h.Holder.Leads(), query)
	writeJSON(w, http.StatusOK, leadListResponse{Success: true, Total: len(leads), Leads: leads})
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.SaveLead.Create(r.Context(), input)
	if err != nil {
		middleware.RecordLeadWrite("create", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadWrite("create", "success")
	writeJSON(w, http.StatusCreated, leadResponse{Success: true, Lead: *lead})
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.SaveLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.SaveLead.Update(r.Context(), id, input)
	if err != nil {
		middleware.RecordLeadWrite("update", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadWrite("update", "success")
	writeJSON(w, http.StatusOK, leadResponse{Success: true, Lead: *lead})
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.SaveLead.Delete(r.Context(), id); err != nil {
		middleware.RecordLeadWrite("delete", "error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadWrite("delete", "success")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
