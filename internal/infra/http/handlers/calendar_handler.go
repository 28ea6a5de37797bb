package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shirshiz/studio-crm/internal/snapshot"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

type CalendarHandler struct {
	Holder *snapshot.Holder
}

func NewCalendarHandler(holder *snapshot.Holder) *CalendarHandler {
	return &CalendarHandler{Holder: holder}
}

type dayCell struct {
	// Day is nil for the leading padding cells before the 1st.
	Day    *int                    `json:"day"`
	Events []usecase.CalendarEvent `json:"events,omitempty"`
}

type calendarResponse struct {
	Success bool      `json:"success"`
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Grid    []dayCell `json:"grid"`
}

// HandleMonth renders a Sunday-first month grid with the events of every
// day attached to its cell.
func (h *CalendarHandler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}
	month := time.Month(monthNum)

	leads := h.Holder.Leads()
	grid := usecase.MonthGrid(year, month)

	cells := make([]dayCell, 0, len(grid))
	for _, d := range grid {
		cell := dayCell{Day: d}
		if d != nil {
			cell.Events = usecase.EventsOnDay(leads, year, month, *d)
		}
		cells = append(cells, cell)
	}

	writeJSON(w, http.StatusOK, calendarResponse{
		Success: true,
		Year:    year,
		Month:   monthNum,
		Grid:    cells,
	})
}
