// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/mock"
	"github.com/MKhiriev/go-auth-flow/internal/store"
	"github.com/MKhiriev/go-auth-flow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-auth-flow",
		TokenDuration: time.Hour,
		CodeHashKey:   "code-key",
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testAppConfig(), logger.NewLogger("test"))
	return svc, users
}

func TestRegister_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// пароль должен уйти в хранилище уже захэшированным
			require.NotEmpty(t, user.UID)
			require.NotEqual(t, "secret", user.PasswordHash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
			return user, nil
		})

	created, err := svc.Register(ctx, models.Credentials{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", created.Email)
	assert.False(t, created.Anonymous)
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, models.Credentials{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, models.Credentials{Email: "not-an-email", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.Credentials{Email: "john@example.com", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UID: "uid-1", Email: "john@example.com", PasswordHash: string(hash)}, nil)

	found, err := svc.Login(ctx, models.Credentials{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", found.UID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UID: "uid-1", Email: "john@example.com", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, models.Credentials{Email: "john@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.Credentials{Email: "ghost@example.com", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLoginAnonymous_Success(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			require.NotEmpty(t, user.UID)
			require.True(t, user.Anonymous)
			require.Empty(t, user.Email)
			return user, nil
		})

	created, err := svc.LoginAnonymous(ctx)
	require.NoError(t, err)
	assert.True(t, created.Anonymous)
}

func TestLoginAnonymous_RepositoryError(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("db failure"))

	_, err := svc.LoginAnonymous(ctx)
	assert.Error(t, err)
}

func TestGetUser_EmptyUID(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.GetUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UID: "uid-42"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "uid-42", parsed.UserUID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCreateToken_MissingUID(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
