package service_test

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relayCfg(key string) config.Relay {
	return config.Relay{TokenSignKey: key, TokenIssuer: "go-clip-keeper", TokenDuration: time.Hour}
}

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := service.NewTokenService(relayCfg("secret"))
	require.True(t, svc.Enabled())

	issued, err := svc.Issue("extension")
	require.NoError(t, err)

	parsed, err := svc.Parse(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "extension", parsed.Caller)
}

func TestTokenService_Disabled(t *testing.T) {
	svc := service.NewTokenService(relayCfg(""))

	assert.False(t, svc.Enabled())
	_, err := svc.Issue("extension")
	assert.ErrorIs(t, err, service.ErrTokenSigningDisabled)
	_, err = svc.Parse("anything")
	assert.ErrorIs(t, err, service.ErrTokenSigningDisabled)
}

func TestTokenService_Parse_Rejects(t *testing.T) {
	svc := service.NewTokenService(relayCfg("secret"))

	foreign, err := utils.GenerateRelayToken("go-clip-keeper", "extension", time.Hour, "other-key")
	require.NoError(t, err)

	_, err = svc.Parse(foreign.SignedString)
	assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)

	_, err = svc.Parse("garbage")
	assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
}

func TestTokenService_Parse_Expired(t *testing.T) {
	svc := service.NewTokenService(relayCfg("secret"))

	expired, err := utils.GenerateRelayToken("go-clip-keeper", "extension", time.Nanosecond, "secret")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.Parse(expired.SignedString)
	assert.ErrorIs(t, err, service.ErrTokenIsExpired)
}
