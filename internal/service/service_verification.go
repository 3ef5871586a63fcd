// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/store"
	"github.com/MKhiriev/go-auth-flow/internal/utils"
	"github.com/MKhiriev/go-auth-flow/internal/validators"
	"github.com/MKhiriev/go-auth-flow/models"
)

// verificationService is the concrete implementation of VerificationService.
// Codes are never stored in plain text: only an HMAC-SHA256 digest keyed with
// codeHashKey is persisted, and the comparison on redeem runs over digests.
type verificationService struct {
	verificationRepository store.VerificationRepository
	userRepository         store.UserRepository

	uuidGen   *utils.UUIDGenerator
	validator validators.Validator

	// codeHashKey is the HMAC secret for digesting one-time codes at rest.
	codeHashKey string

	// ttl bounds how long an issued code stays redeemable.
	ttl time.Duration

	// autoVerifyNumbers skip the code round-trip entirely.
	autoVerifyNumbers []string

	logger *logger.Logger
}

// NewVerificationService constructs a VerificationService wired to the given
// repositories and populated with verification parameters from cfg.
func NewVerificationService(verificationRepository store.VerificationRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) VerificationService {
	return &verificationService{
		verificationRepository: verificationRepository,
		userRepository:         userRepository,
		uuidGen:                utils.NewUUIDGenerator(),
		validator:              validators.NewAuthValidator(),
		codeHashKey:            cfg.CodeHashKey,
		ttl:                    cfg.VerificationTTL,
		autoVerifyNumbers:      cfg.AutoVerifyNumbers,
		logger:                 logger,
	}
}

// StartVerification issues a one-time code for phoneNumber and stores the
// pending attempt.
//
// Numbers on the auto-verify allow-list resolve immediately: the bound account
// is looked up (or created on first sign-in) and returned with AutoVerified
// set, no attempt is stored.
//
// Returns ErrInvalidDataProvided when phoneNumber is not an E.164-shaped
// number.
func (v *verificationService) StartVerification(ctx context.Context, phoneNumber string) (VerificationStart, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, models.PhoneSendRequest{PhoneNumber: phoneNumber}); err != nil {
		log.Error().Err(err).Msg("invalid phone number provided")
		return VerificationStart{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	if slices.Contains(v.autoVerifyNumbers, phoneNumber) {
		user, err := v.resolveUserByPhone(ctx, phoneNumber)
		if err != nil {
			return VerificationStart{}, err
		}
		log.Info().Str("uid", user.UID).Msg("phone number auto-verified")
		return VerificationStart{AutoVerified: true, User: user}, nil
	}

	code, err := generateCode()
	if err != nil {
		log.Err(err).Msg("code generation failed")
		return VerificationStart{}, fmt.Errorf("code generation failed: %w", err)
	}

	now := time.Now()
	attempt := models.VerificationAttempt{
		VerificationID: v.uuidGen.Generate(),
		PhoneNumber:    phoneNumber,
		CodeDigest:     utils.HashString(code, v.codeHashKey),
		ExpiresAt:      now.Add(v.ttl),
		CreatedAt:      now,
	}

	if err := v.verificationRepository.CreateAttempt(ctx, attempt); err != nil {
		log.Err(err).Msg("verification attempt creation ended with error")
		return VerificationStart{}, fmt.Errorf("verification attempt creation ended with error: %w", err)
	}

	// Нет SMS-шлюза: код уходит в лог, как это делает эмулятор провайдера.
	log.Info().
		Str("verificationID", attempt.VerificationID).
		Str("code", code).
		Msg("verification code issued")

	return VerificationStart{VerificationID: attempt.VerificationID}, nil
}

// RedeemCode exchanges a previously issued code for the account bound to the
// attempt's phone number.
//
// The attempt is consumed on every outcome except a code mismatch, so an
// expired or redeemed attempt cannot be replayed.
//
// Returns:
//   - ErrInvalidDataProvided if verificationID is missing or code is not a
//     six digit number.
//   - ErrVerificationNotFound if no such attempt exists.
//   - ErrVerificationExpired if the attempt's TTL has elapsed.
//   - ErrVerificationCodeMismatch if the code digest does not match.
func (v *verificationService) RedeemCode(ctx context.Context, verificationID string, code string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, models.PhoneVerifyRequest{VerificationID: verificationID, Code: code}); err != nil {
		log.Error().Err(err).Msg("invalid verification id or code provided")
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	attempt, err := v.verificationRepository.FindAttempt(ctx, verificationID)
	if err != nil {
		if errors.Is(err, store.ErrAttemptNotFound) {
			return models.User{}, ErrVerificationNotFound
		}
		log.Err(err).Str("verificationID", verificationID).Msg("attempt search failed")
		return models.User{}, fmt.Errorf("attempt search failed: %w", err)
	}

	if attempt.Expired(time.Now()) {
		// просроченная попытка сразу удаляется
		if err := v.verificationRepository.DeleteAttempt(ctx, verificationID); err != nil {
			log.Err(err).Str("verificationID", verificationID).Msg("expired attempt cleanup failed")
		}
		return models.User{}, ErrVerificationExpired
	}

	digest := utils.HashString(code, v.codeHashKey)
	if !hmac.Equal([]byte(digest), []byte(attempt.CodeDigest)) {
		log.Error().Str("verificationID", verificationID).Msg("verification code mismatch")
		return models.User{}, ErrVerificationCodeMismatch
	}

	// single use
	if err := v.verificationRepository.DeleteAttempt(ctx, verificationID); err != nil {
		log.Err(err).Str("verificationID", verificationID).Msg("attempt deletion ended with error")
		return models.User{}, fmt.Errorf("attempt deletion ended with error: %w", err)
	}

	return v.resolveUserByPhone(ctx, attempt.PhoneNumber)
}

// resolveUserByPhone finds the account bound to phoneNumber, creating one on
// first sign-in.
func (v *verificationService) resolveUserByPhone(ctx context.Context, phoneNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := v.userRepository.FindUserByPhone(ctx, phoneNumber)
	if err == nil {
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by phone failed")
		return models.User{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	user := models.User{
		UID:         v.uuidGen.Generate(),
		PhoneNumber: phoneNumber,
		CreatedAt:   time.Now(),
	}

	createdUser, err := v.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("uid", user.UID).Msg("phone user creation ended with error")
		return models.User{}, fmt.Errorf("phone user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// generateCode produces a 6-digit one-time code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n), nil
}
