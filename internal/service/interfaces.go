package service

import (
	"context"

	"github.com/MKhiriev/go-auth-flow/models"
)

type AuthService interface {
	// Register creates a new email/password account.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates an existing email/password account.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// LoginAnonymous creates a throwaway account with no credentials.
	LoginAnonymous(ctx context.Context) (models.User, error)

	// GetUser retrieves the account identified by uid.
	GetUser(ctx context.Context, uid string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VerificationStart is the outcome of [VerificationService.StartVerification].
// Exactly one of the two shapes is populated: a pending attempt identified by
// VerificationID, or an instantly verified account in User.
type VerificationStart struct {
	VerificationID string
	AutoVerified   bool
	User           models.User
}

type VerificationService interface {
	// StartVerification issues a one-time code for phoneNumber and stores the
	// pending attempt. Numbers on the auto-verify allow-list skip the code
	// round-trip and resolve to an account immediately.
	StartVerification(ctx context.Context, phoneNumber string) (VerificationStart, error)

	// RedeemCode exchanges a previously issued code for the account bound to
	// the attempt's phone number, creating the account on first sign-in.
	// An attempt is single-use: it is consumed whether or not a user lookup
	// afterwards succeeds.
	RedeemCode(ctx context.Context, verificationID string, code string) (models.User, error)
}
