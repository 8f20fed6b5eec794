package repository

import (
	"context"

	"chatgto-server/internal/models"
)

// UsersCollection is the document collection holding application users.
const UsersCollection = "users"

// UserRepository defines user persistence in the document store.
type UserRepository interface {
	// CreateUser inserts one user document. It is a single write with no
	// retry; failures are returned wrapped in models.ErrStoreFailure.
	CreateUser(ctx context.Context, user *models.User) error
}
