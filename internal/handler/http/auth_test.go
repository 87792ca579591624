// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/service"
	"github.com/littlelemon/restaurant-server/internal/store"
	"github.com/littlelemon/restaurant-server/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	authenticateFn func(ctx context.Context, tokenKey string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenKey string) (models.User, error) {
	return m.authenticateFn(ctx, tokenKey)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorBody unmarshals the uniform failure body of the response.
func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// validRegister is a convenience fixture used across multiple tests.
var validRegister = models.RegisterRequest{
	Username: "alice",
	Password: "pw123",
	Email:    "alice@example.com",
}

// ─────────────────────────────────────────────
// register — success
// ─────────────────────────────────────────────

// TestRegisterHandler_Success verifies that a valid registration request
// results in 201 Created and the documented JSON body.
func TestRegisterHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{
				Message:  "User created successfully",
				Token:    "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b",
				Username: req.Username,
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User created successfully", body.Message)
	assert.Equal(t, "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b", body.Token)
	assert.Equal(t, "alice", body.Username)
}

// ─────────────────────────────────────────────
// register — invalid JSON
// ─────────────────────────────────────────────

// TestRegisterHandler_InvalidJSON verifies that a malformed request body
// results in 400 Bad Request with a JSON error body.
func TestRegisterHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON", decodeErrorBody(t, rec).Error)
}

// TestRegisterHandler_EmptyBody verifies that an empty request body results in
// 400 Bad Request.
func TestRegisterHandler_EmptyBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// register — Register errors
// ─────────────────────────────────────────────

// TestRegisterHandler_MissingCredentials verifies that the validation error
// maps to 400 with the documented message.
func TestRegisterHandler_MissingCredentials(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrUsernameAndPasswordRequired
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(jsonBody(t, models.RegisterRequest{})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username and password are required", decodeErrorBody(t, rec).Error)
}

// TestRegisterHandler_UsernameTaken verifies that a duplicate username maps
// to 400 with the documented message, not 409.
func TestRegisterHandler_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", decodeErrorBody(t, rec).Error)
}

// TestRegisterHandler_WrappedUsernameTaken verifies that a wrapped
// store.ErrUsernameTaken is still matched via errors.Is.
func TestRegisterHandler_WrappedUsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, errors.Join(errors.New("outer"), store.ErrUsernameTaken)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", decodeErrorBody(t, rec).Error)
}

// TestRegisterHandler_UnexpectedError verifies that an unknown error from
// Register maps to 500 without leaking internal details.
func TestRegisterHandler_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeErrorBody(t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "db connection lost")
}

// ─────────────────────────────────────────────
// login — success
// ─────────────────────────────────────────────

// TestLoginHandler_Success verifies that a valid login request results in
// 200 OK and the documented JSON body.
func TestLoginHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{
				Message:  "Login successful",
				Token:    "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b",
				Username: req.Username,
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(jsonBody(t, models.LoginRequest{Username: "alice", Password: "pw123"})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "alice", body.Username)
	assert.NotEmpty(t, body.Token)
}

// ─────────────────────────────────────────────
// login — errors
// ─────────────────────────────────────────────

// TestLoginHandler_InvalidJSON verifies that a malformed request body results
// in 400 Bad Request.
func TestLoginHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON", decodeErrorBody(t, rec).Error)
}

// TestLoginHandler_MissingCredentials verifies that the validation error maps
// to 400 with the documented message.
func TestLoginHandler_MissingCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrUsernameAndPasswordRequired
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(jsonBody(t, models.LoginRequest{})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username and password are required", decodeErrorBody(t, rec).Error)
}

// TestLoginHandler_InvalidCredentials verifies that both the unknown-user and
// the wrong-password failure map to 401 with the same indistinct message.
func TestLoginHandler_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(jsonBody(t, models.LoginRequest{Username: "nouser", Password: "whatever"})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeErrorBody(t, rec).Error)
}

// TestLoginHandler_UnexpectedError verifies that an unknown error from Login
// maps to 500 Internal Server Error.
func TestLoginHandler_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, errors.New("unexpected db error")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(jsonBody(t, models.LoginRequest{Username: "alice", Password: "pw123"})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
