package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shirshiz/studio-crm/internal/entity"
)

const usersCollection = "users"

type UserRepository struct {
	Coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Coll: db.Collection(usersCollection)}
}

// FindByCredentials runs the one-time sign-in lookup. No match is a nil
// user, not an error.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	var user entity.User
	err := r.Coll.FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
