package handlers

import (
	"net/http"
	"time"

	"github.com/shirshiz/studio-crm/internal/snapshot"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

type TasksHandler struct {
	Holder *snapshot.Holder
}

func NewTasksHandler(holder *snapshot.Holder) *TasksHandler {
	return &TasksHandler{Holder: holder}
}

type tasksResponse struct {
	Success bool              `json:"success"`
	Board   usecase.TaskBoard `json:"board"`
}

// HandleTasks classifies every active lead by call urgency and returns
// the board sorted by next call date.
func (h *TasksHandler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	board := usecase.BuildTaskBoard(h.Holder.Leads(), time.Now())
	writeJSON(w, http.StatusOK, tasksResponse{Success: true, Board: board})
}
