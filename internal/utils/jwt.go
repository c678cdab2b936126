package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateRelayToken issues an HS256 token for caller, valid for
// tokenDuration and carrying issuer as the "iss" claim.
func GenerateRelayToken(issuer, caller string, tokenDuration time.Duration, signKey string) (models.RelayToken, error) {
	if issuer == "" || caller == "" || tokenDuration <= 0 || signKey == "" {
		return models.RelayToken{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   caller,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.RelayToken{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.RelayToken{Token: token, SignedString: tokenString, Caller: caller}, nil
}

// ValidateRelayToken verifies the signature, expiry and issuer of
// tokenString and returns the parsed token with its caller.
func ValidateRelayToken(tokenString, signKey, issuer string) (models.RelayToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.RelayToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	caller, err := token.Claims.GetSubject()
	if err != nil {
		return models.RelayToken{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if caller == "" {
		return models.RelayToken{}, errors.New("empty subject error")
	}

	return models.RelayToken{Token: token, SignedString: tokenString, Caller: caller}, nil
}
