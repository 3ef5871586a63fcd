package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var userRowColumns = []string{"uid", "email", "phone_number", "password_hash", "anonymous", "created_at"}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		user := models.User{
			UID:          "uid-1",
			Email:        "john@example.com",
			PasswordHash: "hash",
			CreatedAt:    time.Now(),
		}

		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.UID, nullIfEmpty(user.Email), nullIfEmpty(""), user.PasswordHash, false, user.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, user.UID, created.UID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(pgError(pgerrcode.UniqueViolation, "users_email_key"))

		_, err := repo.CreateUser(ctx, models.User{UID: "uid-1", Email: "john@example.com"})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(pgError(pgerrcode.UniqueViolation, "users_phone_number_key"))

		_, err := repo.CreateUser(ctx, models.User{UID: "uid-1", PhoneNumber: "+15550001111"})
		assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
	})

	t.Run("sqlite duplicate is recognised by message", func(t *testing.T) {
		// go-sqlite3 не отдаёт типизированные коды через database/sql
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New("UNIQUE constraint failed: users.email"))

		_, err := repo.CreateUser(ctx, models.User{UID: "uid-1", Email: "john@example.com"})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("unexpected DB error is wrapped", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New("db network error"))

		_, err := repo.CreateUser(ctx, models.User{UID: "uid-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected DB error")
	})
}

func TestFindUserBy(t *testing.T) {
	ctx := context.Background()

	t.Run("by email", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT uid").
			WithArgs("john@example.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("uid-1", "john@example.com", nil, "hash", false, time.Now()))

		found, err := repo.FindUserByEmail(ctx, "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", found.Email)
		assert.Empty(t, found.PhoneNumber) // NULL в базе читается как ""
	})

	t.Run("by uid, anonymous user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT uid").
			WithArgs("uid-7").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("uid-7", nil, nil, "", true, time.Now()))

		found, err := repo.FindUserByUID(ctx, "uid-7")
		require.NoError(t, err)
		assert.True(t, found.Anonymous)
	})

	t.Run("by phone", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT uid").
			WithArgs("+15550001111").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("uid-3", nil, "+15550001111", "", false, time.Now()))

		found, err := repo.FindUserByPhone(ctx, "+15550001111")
		require.NoError(t, err)
		assert.Equal(t, "+15550001111", found.PhoneNumber)
	})

	t.Run("no rows maps to ErrNoUserWasFound", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT uid").
			WithArgs("john@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByEmail(ctx, "john@example.com")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("unexpected DB error is wrapped", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT uid").
			WithArgs("john@example.com").
			WillReturnError(errors.New("db failure"))

		_, err := repo.FindUserByEmail(ctx, "john@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected DB error")
	})

	t.Run("scan error on wrong row shape", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT uid").
			WithArgs("john@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"uid"}).AddRow("uid-1"))

		_, err := repo.FindUserByEmail(ctx, "john@example.com")
		assert.Error(t, err)
	})
}
