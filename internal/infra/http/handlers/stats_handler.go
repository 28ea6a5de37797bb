package handlers

import (
	"net/http"
	"time"

	"github.com/shirshiz/studio-crm/internal/snapshot"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

type StatsHandler struct {
	Holder *snapshot.Holder
}

func NewStatsHandler(holder *snapshot.Holder) *StatsHandler {
	return &StatsHandler{Holder: holder}
}

type statsResponse struct {
	Success bool          `json:"success"`
	Filter  string        `json:"filter"`
	Stats   usecase.Stats `json:"stats"`
}

// HandleStats recomputes the dashboard from the in-memory snapshot.
// Query params: filter (day|week|month|year|custom|all, default all),
// from/to for custom ranges.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := usecase.WindowFilter(q.Get("filter"))
	if filter == "" {
		filter = usecase.WindowAll
	}

	now := time.Now()
	window := usecase.ResolveWindow(filter, now, usecase.CustomRange{
		From: q.Get("from"),
		To:   q.Get("to"),
	})

	stats := usecase.Aggregate(h.Holder.Leads(), window, now)
	writeJSON(w, http.StatusOK, statsResponse{Success: true, Filter: string(filter), Stats: stats})
}
