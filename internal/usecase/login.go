package usecase

import (
	"context"
	"strings"

	"github.com/shirshiz/studio-crm/internal/entity"
)

// LoginUseCase gates access with a one-time credential lookup in the users
// collection. It carries no session state; the client keeps the result.
type LoginUseCase struct {
	Users entity.UserRepositoryInterface
}

func NewLoginUseCase(users entity.UserRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Users: users}
}

// Execute returns the matching user, or nil when the credentials match no
// account. Store failures surface as a TechnicalError.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, nil
	}

	user, err := uc.Users.FindByCredentials(ctx, email, input.Password)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_QUERY", Message: "שגיאה בהתחברות"}
	}
	return user, nil
}
