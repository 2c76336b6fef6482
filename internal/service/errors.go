package service

import "errors"

var (
	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure
	// (bad signature, wrong issuer, expired, malformed) so callers do not
	// inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
