package service

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies bearer credentials presented on the synchronous path.
// Token issuing (login/registration) belongs to the external authority; this
// service only checks that a presented token was signed by it.
type AuthService interface {
	// VerifyToken validates the raw JWT string and returns its decoded
	// claim set, or [ErrTokenIsExpiredOrInvalid] on any validation
	// failure.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes the CRUD operations of the user collection to the
// transport layer.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
