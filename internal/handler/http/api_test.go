package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

const (
	apiTestSignKey = "api-test-sign-key"
	apiTestIssuer  = "auth-service"
)

// startTestAPI wires the full HTTP surface over a real in-memory store and
// returns a resty client plus the repository backing the server, so tests can
// seed records the same way the queue consumer does.
func startTestAPI(t *testing.T) (*resty.Client, store.UserRepository) {
	t.Helper()

	log := logger.Nop()
	storages := store.NewStorages(log)
	services := service.NewServices(storages, config.App{
		TokenSignKey: apiTestSignKey,
		TokenIssuer:  apiTestIssuer,
	}, log)

	srv := httptest.NewServer(NewHandler(services, log).Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL), storages.UserRepository
}

func validAuthToken(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(apiTestIssuer, 1, "admin", time.Hour, apiTestSignKey)
	require.NoError(t, err)

	return token
}

func TestAPI_RejectsMissingCredential(t *testing.T) {
	client, _ := startTestAPI(t)

	var body models.ErrorResponse
	resp, err := client.R().SetError(&body).Get("/users")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.NotEmpty(t, body.Message)
}

func TestAPI_RejectsInvalidCredential(t *testing.T) {
	client, _ := startTestAPI(t)

	foreignToken, err := utils.GenerateJWTToken(apiTestIssuer, 1, "admin", time.Hour, "some-other-key")
	require.NoError(t, err)

	var body models.ErrorResponse
	resp, err := client.R().
		SetAuthToken(foreignToken).
		SetError(&body).
		Get("/users")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), body.Message)
}

func TestAPI_ListUsers(t *testing.T) {
	client, repo := startTestAPI(t)
	token := validAuthToken(t)

	t.Run("empty store lists no users", func(t *testing.T) {
		var users []models.User
		resp, err := client.R().SetAuthToken(token).SetResult(&users).Get("/users")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Empty(t, users)
	})

	// records arrive the way the queue consumer delivers them
	seeded := models.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "hash", Role: "user"}
	_, err := repo.Upsert(context.Background(), seeded)
	require.NoError(t, err)

	t.Run("seeded record is listed", func(t *testing.T) {
		var users []models.User
		resp, err := client.R().SetAuthToken(token).SetResult(&users).Get("/users")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, []models.User{seeded}, users)
	})
}

func TestAPI_GetUser(t *testing.T) {
	client, repo := startTestAPI(t)
	token := validAuthToken(t)

	seeded := models.User{ID: 7, Name: "Alice", Email: "alice@example.com", Role: "user"}
	_, err := repo.Upsert(context.Background(), seeded)
	require.NoError(t, err)

	t.Run("existing record", func(t *testing.T) {
		var user models.User
		resp, err := client.R().SetAuthToken(token).SetResult(&user).Get("/users/7")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, seeded, user)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		var body models.ErrorResponse
		resp, err := client.R().SetAuthToken(token).SetError(&body).Get("/users/999")
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode())
		assert.Equal(t, "user not found", body.Message)
	})
}

func TestAPI_UpdateUser_PartialMerge(t *testing.T) {
	client, repo := startTestAPI(t)
	token := validAuthToken(t)

	seeded := models.User{ID: 7, Name: "Alice", Email: "alice@example.com", Password: "hash", Role: "user"}
	_, err := repo.Upsert(context.Background(), seeded)
	require.NoError(t, err)

	var updated models.User
	resp, err := client.R().
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(`{"name":"Alicia"}`).
		SetResult(&updated).
		Put("/users/7")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode())

	// only the submitted field changed
	want := seeded
	want.Name = "Alicia"
	assert.Equal(t, want, updated)

	stored, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, stored)
}

func TestAPI_DeleteUser(t *testing.T) {
	client, repo := startTestAPI(t)
	token := validAuthToken(t)

	_, err := repo.Upsert(context.Background(), models.User{ID: 7, Name: "Alice"})
	require.NoError(t, err)

	var confirmation models.DeleteResponse
	resp, err := client.R().SetAuthToken(token).SetResult(&confirmation).Delete("/users/7")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, models.DeleteResponse{Message: "user removed", ID: 7}, confirmation)

	var body models.ErrorResponse
	resp, err = client.R().SetAuthToken(token).SetError(&body).Get("/users/7")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "user not found", body.Message)
}
