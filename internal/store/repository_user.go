package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table and
// works unchanged on both PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. UID and CreatedAt are assigned by
// the caller, so the input is returned unchanged on success.
//
// Error handling:
//   - unique violation on the email column maps to [ErrEmailAlreadyExists]
//   - unique violation on the phone column maps to [ErrPhoneAlreadyExists]
//   - any other driver-level error is wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createUser,
		user.UID, nullIfEmpty(user.Email), nullIfEmpty(user.PhoneNumber), user.PasswordHash, user.Anonymous, user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if sentinel := uniqueViolation(err); sentinel != nil {
			return models.User{}, sentinel
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the account registered under email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// FindUserByUID retrieves the account identified by uid.
func (r *userRepository) FindUserByUID(ctx context.Context, uid string) (models.User, error) {
	return r.findUserBy(ctx, "uid", uid)
}

// FindUserByPhone retrieves the account bound to phoneNumber.
func (r *userRepository) FindUserByPhone(ctx context.Context, phoneNumber string) (models.User, error) {
	return r.findUserBy(ctx, "phone_number", phoneNumber)
}

// findUserBy runs a single-column lookup built by [buildFindUserQuery] and
// scans the matched row.
//
// Error handling:
//   - no matching row maps to [ErrNoUserWasFound]
//   - query build failure is wrapped in [ErrBuildingSQLQuery]
//   - any other driver-level error is wrapped as "unexpected DB error"
func (r *userRepository) findUserBy(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		foundUser models.User
		email     sql.NullString
		phone     sql.NullString
	)
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	if err := row.Scan(&foundUser.UID, &email, &phone, &foundUser.PasswordHash, &foundUser.Anonymous, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser.Email = email.String
	foundUser.PhoneNumber = phone.String

	return foundUser, nil
}

// nullIfEmpty maps "" to SQL NULL so that the UNIQUE constraints on email and
// phone_number ignore accounts without those identifiers (anonymous users).
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// uniqueViolation maps a driver-level unique constraint failure to the
// matching domain sentinel, or returns nil if err is something else.
// PostgreSQL reports the violated constraint name, SQLite only the message
// text, so both are inspected.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return ErrPhoneAlreadyExists
		}
		return ErrEmailAlreadyExists
	}

	if sqliteUniqueViolation(err) {
		if strings.Contains(err.Error(), "users.phone_number") {
			return ErrPhoneAlreadyExists
		}
		return ErrEmailAlreadyExists
	}

	return nil
}
