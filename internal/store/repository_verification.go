// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/models"
)

// verificationRepository is the SQL-backed implementation of
// [VerificationRepository]. Pending phone verification attempts live in the
// "verification_attempts" table until they are redeemed, superseded or purged.
type verificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVerificationRepository constructs a [VerificationRepository] backed by
// the provided database connection and logger.
func NewVerificationRepository(db *DB, logger *logger.Logger) VerificationRepository {
	logger.Debug().Msg("creating verification repository")
	return &verificationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAttempt persists a new verification attempt.
func (r *verificationRepository) CreateAttempt(ctx context.Context, attempt models.VerificationAttempt) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createAttempt,
		attempt.VerificationID, attempt.PhoneNumber, attempt.CodeDigest, attempt.ExpiresAt, attempt.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.CreateAttempt").Msg("error inserting verification attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindAttempt retrieves the attempt identified by verificationID.
//
// Error handling:
//   - no matching row maps to [ErrAttemptNotFound]
//   - any other driver-level error is wrapped as "unexpected DB error"
func (r *verificationRepository) FindAttempt(ctx context.Context, verificationID string) (models.VerificationAttempt, error) {
	log := logger.FromContext(ctx)

	var attempt models.VerificationAttempt
	row := r.db.QueryRowContext(ctx, findAttempt, verificationID)

	// scan found attempt from db
	if err := row.Scan(&attempt.VerificationID, &attempt.PhoneNumber, &attempt.CodeDigest, &attempt.ExpiresAt, &attempt.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VerificationAttempt{}, ErrAttemptNotFound
		}
		log.Err(err).Str("func", "*verificationRepository.FindAttempt").Msg("error: scanning error")
		return models.VerificationAttempt{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return attempt, nil
}

// DeleteAttempt removes the attempt identified by verificationID. Deleting an
// attempt that is already gone is not an error.
func (r *verificationRepository) DeleteAttempt(ctx context.Context, verificationID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAttempt, verificationID); err != nil {
		log.Err(err).Str("func", "*verificationRepository.DeleteAttempt").Msg("error deleting verification attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// PurgeExpired removes every attempt whose expiry lies before now and returns
// the number of removed rows. The delete is retried once when the backend
// classifies the failure as transient.
func (r *verificationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeExpiredQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.PurgeExpired").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.Retryable(err) {
		log.Warn().Err(err).Str("func", "*verificationRepository.PurgeExpired").Msg("transient error, retrying purge")
		res, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*verificationRepository.PurgeExpired").Msg("error purging expired attempts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return purged, nil
}
