package entity

import "context"

// User is a CRM operator account, looked up once during sign-in.
type User struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
}

type UserRepositoryInterface interface {
	// FindByCredentials returns the matching user or nil when no user
	// matches. A nil user is not an error.
	FindByCredentials(ctx context.Context, email, password string) (*User, error)
}
