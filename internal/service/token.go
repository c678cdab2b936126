package service

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewTokenService creates a TokenService from the relay settings. With an
// empty TokenSignKey the service is disabled.
func NewTokenService(cfg config.Relay) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

func (t *tokenService) Enabled() bool {
	return t.signKey != ""
}

func (t *tokenService) Issue(caller string) (models.RelayToken, error) {
	if !t.Enabled() {
		return models.RelayToken{}, ErrTokenSigningDisabled
	}
	return utils.GenerateRelayToken(t.issuer, caller, t.duration, t.signKey)
}

func (t *tokenService) Parse(tokenString string) (models.RelayToken, error) {
	if !t.Enabled() {
		return models.RelayToken{}, ErrTokenSigningDisabled
	}

	token, err := utils.ValidateRelayToken(tokenString, t.signKey, t.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.RelayToken{}, ErrTokenIsExpired
		}
		return models.RelayToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
