package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shirshiz/studio-crm/internal/entity"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return the user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByCredentials", mock.Anything, "dana@example.com", "secret").
			Return(&entity.User{ID: "u1", Name: "דנה", Email: "dana@example.com"}, nil)

		uc := NewLoginUseCase(repo)
		user, err := uc.Execute(context.Background(), LoginInput{Email: "dana@example.com", Password: "secret"})

		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("no match is nil user, not an error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByCredentials", mock.Anything, "dana@example.com", "wrong").Return(nil, nil)

		uc := NewLoginUseCase(repo)
		user, err := uc.Execute(context.Background(), LoginInput{Email: "dana@example.com", Password: "wrong"})

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("empty credentials skip the lookup", func(t *testing.T) {
		repo := new(MockUserRepository)
		uc := NewLoginUseCase(repo)

		user, err := uc.Execute(context.Background(), LoginInput{})

		assert.NoError(t, err)
		assert.Nil(t, user)
		repo.AssertNotCalled(t, "FindByCredentials", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure is a technical error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByCredentials", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("timeout"))

		uc := NewLoginUseCase(repo)
		_, err := uc.Execute(context.Background(), LoginInput{Email: "dana@example.com", Password: "x"})

		assert.True(t, IsTechnicalError(err))
	})
}
