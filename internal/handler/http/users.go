package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing users")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-numeric user id in path")
		writeError(w, "user not found", http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user lookup failed")
		writeError(w, errorMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-numeric user id in path")
		writeError(w, "user not found", http.StatusNotFound)
		return
	}

	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, id, upd)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		writeError(w, errorMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-numeric user id in path")
		writeError(w, "user not found", http.StatusNotFound)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		writeError(w, errorMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Message: "user removed", ID: id}, http.StatusOK)
}

// userIDFromURL parses the {id} route parameter as a base-10 int64.
func userIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
