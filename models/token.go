package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the decoded, verified claim set of an access token.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject,
// expiry, issuer) and adds the application-specific Role claim. A Token is
// derived per request from a verified credential string, is never persisted,
// and lives no longer than the request it was decoded for.
type Token struct {
	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Role is the role tag the issuing authority embedded in the token.
	// It is carried for downstream consumers; no authorization decision
	// is made on it here.
	Role string `json:"role,omitempty"`

	// UserID is the identifier extracted from the "sub" claim, cached so
	// handlers do not re-parse the subject string.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim and parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(subject, 10, 64)
}
