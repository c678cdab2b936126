package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication on
// relay endpoints. It is installed only when a token signing key is
// configured.
//
// The token is verified via [service.TokenService.Parse]; on success the
// caller (the token subject) is stored in the request context under
// [utils.CallerCtxKey]. Every rejection is answered with 401 and a JSON
// error body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			status, msg := replyFromError(err)
			utils.WriteJSONError(w, msg, status)
			return
		}

		token, err := h.services.Token.Parse(tokenString)
		if err != nil {
			log.Err(err).Msg("relay token rejected")
			status, msg := replyFromError(err)
			utils.WriteJSONError(w, msg, status)
			return
		}

		log.Debug().Str("caller", token.Caller).Msg("relay caller authenticated")
		ctx := context.WithValue(r.Context(), utils.CallerCtxKey, token.Caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw header value of the
// form "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
