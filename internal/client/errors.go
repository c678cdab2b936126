package client

import "errors"

var (
	ErrDecryptFailed       = errors.New("decrypt failed")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
