package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/models"
)

// userService is the concrete implementation of UserService. It is a thin
// orchestration layer over the shared user repository: the repository owns
// the mutual-exclusion contract, this layer owns logging and error wrapping.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns a snapshot of every user record in insertion order.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// GetUser returns the user with the given identifier.
//
// Returns a wrapped store.ErrUserNotFound if the identifier is absent.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser merges the provided partial update over the stored record and
// returns the merged result.
//
// No shape validation is performed on upd beyond a successful decode: an
// empty update is a valid no-op that returns the stored record unchanged.
// Returns a wrapped store.ErrUserNotFound if the identifier is absent; in
// that case no mutation occurs.
func (s *userService) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.UpdateByID(ctx, id, upd)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	log.Debug().Int64("id", id).Msg("user updated")

	return user, nil
}

// DeleteUser removes the user with the given identifier.
//
// Returns a wrapped store.ErrUserNotFound if the identifier is absent.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteByID(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	log.Debug().Int64("id", id).Msg("user deleted")

	return nil
}
