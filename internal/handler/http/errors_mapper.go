package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	store.ErrUserNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage maps domain errors to the short human-readable message placed
// in the JSON error body. Unexpected errors stay generic so internals never
// leak to the caller.
func errorMessage(err error) string {
	if errors.Is(err, store.ErrUserNotFound) {
		return "user not found"
	}
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return service.ErrTokenIsExpiredOrInvalid.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError writes a structured JSON error body with the given status code.
// Every failed request on this surface carries such a body.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}
