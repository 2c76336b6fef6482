package store

import (
	"github.com/MKhiriev/go-user-service/internal/logger"
)

// Storages aggregates every repository the application owns. The user
// collection is volatile: it lives for the process lifetime only.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(logger),
	}
}
