package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-flow/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken issues an HMAC-SHA256 signed token carrying the standard
// claims: iss is the issuer, sub is the user UID, iat is the current time and
// exp is iat plus tokenDuration. Every parameter is required; empty strings or
// a zero duration are rejected before signing.
//
// Example:
//
//	token, err := utils.GenerateJWTToken("auth-flow", uid, time.Hour, "secret")
func GenerateJWTToken(issuer, userUID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userUID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userUID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken checks the signature against tokenSignKey, the iss
// claim against tokenIssuer and the exp claim against the current time, then
// extracts the user UID from the sub claim. A token with a missing or empty
// subject is rejected even when the signature is valid.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userUID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userUID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, UserUID: userUID}, err
}
