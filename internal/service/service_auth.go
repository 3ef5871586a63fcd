package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/store"
	"github.com/MKhiriev/go-auth-flow/internal/utils"
	"github.com/MKhiriev/go-auth-flow/internal/validators"
	"github.com/MKhiriev/go-auth-flow/models"
)

// authService covers registration, credential checks, anonymous sign-ins and
// the JWT lifecycle. Passwords are hashed with bcrypt, persistence lives in
// the user repository. Состояние после конструктора только читается, поэтому
// сервис безопасен для конкурентного использования.
type authService struct {
	userRepository store.UserRepository
	uuidGen        *utils.UUIDGenerator
	validator      validators.Validator
	tokenSignKey   string // HMAC-секрет подписи JWT
	tokenIssuer    string // claim "iss"; токены с другим issuer отклоняются
	tokenDuration  time.Duration
	logger         *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGen:        utils.NewUUIDGenerator(),
		validator:      validators.NewAuthValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new email/password account. The email shape and the
// password length floor are checked first ([ErrInvalidDataProvided] on
// failure), then the bcrypt hash is stored. UID and CreatedAt are assigned
// here, not by the database. Repository errors, including
// [store.ErrEmailAlreadyExists], come back wrapped.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UID:          a.uuidGen.Generate(),
		Email:        credentials.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing email/password account: looks the account
// up by email and compares the password with the stored bcrypt hash. Empty
// credentials fail with [ErrInvalidDataProvided], a mismatched password with
// [ErrWrongPassword], unknown accounts with a wrapped
// [store.ErrNoUserWasFound].
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Err(err).
			Str("uid", foundUser.UID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// LoginAnonymous creates a throwaway account with no credentials. Every call
// produces a fresh account.
func (a *authService) LoginAnonymous(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		UID:       a.uuidGen.Generate(),
		Anonymous: true,
		CreatedAt: time.Now(),
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("uid", user.UID).Msg("anonymous user creation ended with error")
		return models.User{}, fmt.Errorf("anonymous user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser retrieves the account identified by uid.
func (a *authService) GetUser(ctx context.Context, uid string) (models.User, error) {
	log := logger.FromContext(ctx)

	if uid == "" {
		log.Error().Msg("empty uid provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUID(ctx, uid)
	if err != nil {
		log.Err(err).Str("uid", uid).Msg("user search by uid failed")
		return models.User{}, fmt.Errorf("user search by uid failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a JWT for user, signed with the configured key and
// expiring after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature and the issuer claim of a raw JWT.
// Любая ошибка валидации (просрочен, чужой issuer, битый формат) сводится к
// [ErrTokenIsExpiredOrInvalid], чтобы вызывающим не разбирать низкоуровневые
// ошибки JWT.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
