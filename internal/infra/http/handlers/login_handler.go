package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shirshiz/studio-crm/internal/entity"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

type LoginHandler struct {
	Login *usecase.LoginUseCase
}

func NewLoginHandler(login *usecase.LoginUseCase) *LoginHandler {
	return &LoginHandler{Login: login}
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    entity.User `json:"user"`
}

func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Login.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "אימייל או סיסמה שגויים")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Success: true, User: *user})
}
