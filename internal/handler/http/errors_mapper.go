package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
)

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenSigningDisabled:    {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	ErrEmptyAuthorizationHeader:        {http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()},
	ErrInvalidAuthorizationHeader:      {http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error()},
	ErrEmptyToken:                      {http.StatusUnauthorized, ErrEmptyToken.Error()},
}

func replyFromError(err error) (int, string) {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
