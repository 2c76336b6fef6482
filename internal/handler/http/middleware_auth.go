package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// verifies it via [service.AuthService.VerifyToken], and — on success —
// stores the authenticated caller's ID and role in the request context under
// [utils.UserIDCtxKey] and [utils.RoleCtxKey] before delegating to the next
// handler. On any failure the request stops here: the store is never touched.
//
// Rejections follow the credential taxonomy:
//   - HTTP 401 Unauthorized — the credential is missing: no "Authorization"
//     header ([ErrEmptyAuthorizationHeader]), an unparsable header
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - HTTP 403 Forbidden — a credential was presented but failed
//     verification (bad signature, wrong issuer, expired).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest], and every rejection body is structured JSON.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			writeError(w, err.Error(), http.StatusForbidden)
			return
		}

		// Store the verified claims in the context so that downstream
		// handlers can retrieve them without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.RoleCtxKey, token.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
