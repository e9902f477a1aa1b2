package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hanriver/traffic_hazard_system/internal/config"
	"github.com/hanriver/traffic_hazard_system/internal/models"
	"github.com/hanriver/traffic_hazard_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

// newTestAuthService builds the service with a mocked user repository.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	cfg := &config.Config{
		JWTSecret: testJWTSecret,
		JWTTTL:    time.Hour,
	}

	svc := NewAuthService(repoMock, logger, cfg)
	return svc.(*authService), repoMock
}

func TestRegister_Success(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			// The service must store a bcrypt hash, never the raw password.
			assert.NotEqual(t, "hunter22", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
			u.ID = userID
			u.RegisteredAt = time.Now()
			return nil
		}).Times(1)

	user, err := svc.Register(ctx, "citizen01", "Kim Minji", "hunter22", "minji@example.com")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "citizen01", user.LoginID)
	assert.Equal(t, "Kim Minji", user.Name)
}

func TestRegister_LoginTaken(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(ErrLoginTaken).Times(1)

	user, err := svc.Register(ctx, "citizen01", "Kim Minji", "hunter22", "")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestRegister_RepoError(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("insert failed")

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError).Times(1)

	user, err := svc.Register(ctx, "citizen01", "Kim Minji", "hunter22", "")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "could not register user")
}

func TestLogin_Success(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           userID,
		LoginID:      "citizen01",
		Name:         "Kim Minji",
		PasswordHash: string(hash),
	}

	repoMock.EXPECT().GetByLoginID(ctx, "citizen01").Return(storedUser, nil).Times(1)

	user, token, err := svc.Login(ctx, "citizen01", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
	require.NotEmpty(t, token)

	// The token subject must be the user id.
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           uuid.New(),
		LoginID:      "citizen01",
		PasswordHash: string(hash),
	}

	repoMock.EXPECT().GetByLoginID(ctx, "citizen01").Return(storedUser, nil).Times(1)

	user, token, err := svc.Login(ctx, "citizen01", "wrong-password")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByLoginID(ctx, "nobody").Return(nil, ErrUserNotFound).Times(1)

	// Unknown id and wrong password must be indistinguishable.
	user, token, err := svc.Login(ctx, "nobody", "whatever")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepoError(t *testing.T) {
	svc, repoMock := newTestAuthService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("query failed")

	repoMock.EXPECT().GetByLoginID(ctx, "citizen01").Return(nil, dbError).Times(1)

	user, token, err := svc.Login(ctx, "citizen01", "hunter22")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorContains(t, err, "could not look up user")
}
