package repository

import (
	"context"
	"fmt"

	"chatgto-server/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Compile-time check to ensure mongoUserRepository implements UserRepository
var _ UserRepository = (*mongoUserRepository)(nil)

type mongoUserRepository struct {
	users  *mongo.Collection
	logger *zap.Logger
}

// NewMongoUserRepository creates a MongoDB-backed UserRepository.
func NewMongoUserRepository(db *mongo.Database, logger *zap.Logger) UserRepository {
	return &mongoUserRepository{
		users:  db.Collection(UsersCollection),
		logger: logger.Named("MongoUserRepo"),
	}
}

// CreateUser inserts a new user document.
func (r *mongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.logger.Debug("Inserting user", zap.String("firebaseUID", user.FirebaseUID), zap.String("email", user.Email))
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		r.logger.Error("Failed to insert user into mongo", zap.Error(err), zap.String("firebaseUID", user.FirebaseUID))
		return fmt.Errorf("%w: %v", models.ErrStoreFailure, err)
	}
	r.logger.Info("User created successfully", zap.String("firebaseUID", user.FirebaseUID), zap.Any("insertedID", res.InsertedID))
	return nil
}
