package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"chatgto-server/internal/models"
	"chatgto-server/internal/repository/mocks"
	"chatgto-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Success(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.FirebaseUID == "uid-123" && u.Email == "hero@example.com" && !u.CreatedAt.IsZero()
	})).Return(nil).Once()

	svc := service.NewUserService(repo, nil)
	user, err := svc.CreateUser(context.Background(), " uid-123 ", "hero@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", user.FirebaseUID)
}

func TestCreateUser_StoreFailure(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	storeErr := fmt.Errorf("%w: %v", models.ErrStoreFailure, errors.New("connection refused"))
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(storeErr).Once()

	svc := service.NewUserService(repo, nil)
	user, err := svc.CreateUser(context.Background(), "uid-123", "hero@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrStoreFailure)
	assert.Contains(t, err.Error(), "connection refused")
}
