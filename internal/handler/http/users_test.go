package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/models"
)

// userRoutes exposes the user handlers without the auth gate, so tests can
// exercise routing and response shaping in isolation.
func userRoutes(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/users", h.listUsers)
	router.Get("/users/{id}", h.getUser)
	router.Put("/users/{id}", h.updateUser)
	router.Delete("/users/{id}", h.deleteUser)

	return router
}

func TestListUsers(t *testing.T) {
	h, _, userService := newTestHandler(t)

	want := []models.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "user"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: "admin"},
	}
	userService.EXPECT().ListUsers(gomock.Any()).Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)
}

func TestListUsers_ServiceError(t *testing.T) {
	h, _, userService := newTestHandler(t)

	userService.EXPECT().ListUsers(gomock.Any()).Return(nil, fmt.Errorf("listing users failed"))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetUser(t *testing.T) {
	h, _, userService := newTestHandler(t)

	want := models.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: "user"}
	userService.EXPECT().GetUser(gomock.Any(), int64(7)).Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)
}

func TestGetUser_NotFound(t *testing.T) {
	h, _, userService := newTestHandler(t)

	userService.EXPECT().
		GetUser(gomock.Any(), int64(404)).
		Return(models.User{}, fmt.Errorf("user search by id failed: %w", store.ErrUserNotFound))

	req := httptest.NewRequest(http.MethodGet, "/users/404", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", decodeErrorBody(t, rec).Message)
}

func TestGetUser_NonNumericID(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", decodeErrorBody(t, rec).Message)
}

func TestUpdateUser(t *testing.T) {
	h, _, userService := newTestHandler(t)

	name := "Alicia"
	want := models.User{ID: 7, Name: "Alicia", Email: "alice@example.com", Role: "user"}

	userService.EXPECT().
		UpdateUser(gomock.Any(), int64(7), models.UserUpdate{Name: &name}).
		Return(want, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/7", strings.NewReader(`{"name":"Alicia"}`))
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)
}

func TestUpdateUser_InvalidJSON(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/users/7", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeErrorBody(t, rec).Message)
}

func TestUpdateUser_NotFound(t *testing.T) {
	h, _, userService := newTestHandler(t)

	userService.EXPECT().
		UpdateUser(gomock.Any(), int64(404), gomock.Any()).
		Return(models.User{}, fmt.Errorf("user update failed: %w", store.ErrUserNotFound))

	req := httptest.NewRequest(http.MethodPut, "/users/404", strings.NewReader(`{"name":"Nobody"}`))
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", decodeErrorBody(t, rec).Message)
}

func TestDeleteUser(t *testing.T) {
	h, _, userService := newTestHandler(t)

	userService.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.DeleteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, models.DeleteResponse{Message: "user removed", ID: 7}, got)
}

func TestDeleteUser_NotFound(t *testing.T) {
	h, _, userService := newTestHandler(t)

	userService.EXPECT().
		DeleteUser(gomock.Any(), int64(404)).
		Return(fmt.Errorf("user deletion failed: %w", store.ErrUserNotFound))

	req := httptest.NewRequest(http.MethodDelete, "/users/404", nil)
	rec := httptest.NewRecorder()

	userRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", decodeErrorBody(t, rec).Message)
}
