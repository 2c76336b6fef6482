package service

import (
	"context"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

// authService is the concrete implementation of AuthService.
// It verifies HMAC-SHA256 signed JWT tokens against the shared secret the
// issuing authority signs with. Verification is pure: no store access, no
// side effects.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT token signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens with any other
	// issuer are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the verification
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// VerifyToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiry, and the issuer claim. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
//
// Any valid token grants access; no further authorization check is made.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token verification failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
