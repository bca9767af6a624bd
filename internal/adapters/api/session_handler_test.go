package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, path string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestSessionHandler_Login_Success(t *testing.T) {
	gw := setupTestGateway(t)
	gw.expectClient(func(jar http.CookieJar) {
		// the backend answers the login with its own session cookie
		jar.SetCookies(backendOrigin(), []*http.Cookie{{Name: "JSESSIONID", Value: "backend-1"}})
	})
	gw.client.EXPECT().Login(mock.Anything, "a@b.com", "secret1").
		Return(&farm.Session{ID: farm.NumberID(1), Email: "a@b.com"}, nil).Once()

	w := gw.do(jsonRequest(http.MethodPost, "/api/session/login", LoginRequest{Email: "a@b.com", Password: "secret1"}), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":{"id":1,"email":"a@b.com"}}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret1")

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	stored, err := gw.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, farm.NumberID(1), stored.User.ID)
	assert.Equal(t, []ports.StoredCookie{{Name: "JSESSIONID", Value: "backend-1"}}, stored.Cookies)
}

func TestSessionHandler_Login_InvalidFormNeverReachesBackend(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		message string
	}{
		{"MissingEmail", LoginRequest{Password: "secret1"}, "Email is required"},
		{"BadEmail", LoginRequest{Email: "farmer", Password: "secret1"}, "Invalid email"},
		{"ShortPassword", LoginRequest{Email: "a@b.com", Password: "123"}, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := setupTestGateway(t)

			w := gw.do(jsonRequest(http.MethodPost, "/api/session/login", tt.body), "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeError(t, w)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, "show_field_message", response.Action)
			gw.factory.AssertNotCalled(t, "NewClient", mock.Anything)
		})
	}
}

func TestSessionHandler_Login_MalformedBody(t *testing.T) {
	gw := setupTestGateway(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	w := gw.do(req, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", decodeError(t, w).Error)
}

func TestSessionHandler_Login_BackendErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"BadCredentials", errors.FromResponse(401, "Bad credentials"), http.StatusUnauthorized, "Invalid email or password."},
		{"Unreachable", errors.NewNetworkError("failed to reach farm backend", nil), http.StatusServiceUnavailable, "Unable to connect to the server. Check your internet or try again later."},
		{"ServerFailure", errors.FromResponse(500, ""), http.StatusBadGateway, "Failed to login. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := setupTestGateway(t)
			gw.expectClient(nil)
			gw.client.EXPECT().Login(mock.Anything, "a@b.com", "secret1").Return(nil, tt.err).Once()

			w := gw.do(jsonRequest(http.MethodPost, "/api/session/login", LoginRequest{Email: "a@b.com", Password: "secret1"}), "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
			assert.Nil(t, sessionCookie(w))
		})
	}
}

func TestSessionHandler_Register(t *testing.T) {
	request := RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jane",
		Email:     "jane@farm.io",
		Phone:     "0700000000",
		Password:  "secret1",
	}

	t.Run("Success", func(t *testing.T) {
		gw := setupTestGateway(t)
		gw.expectClient(nil)
		gw.client.EXPECT().Register(mock.Anything, mock.MatchedBy(func(r farm.Registration) bool {
			return r.Username == "jane" && r.Phone == "0700000000"
		})).Return(&farm.RegistrationResult{Message: farm.RegistrationSuccessMessage}, nil).Once()

		w := gw.do(jsonRequest(http.MethodPost, "/api/session/register", request), "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Registration successful")
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("MissingPhone", func(t *testing.T) {
		gw := setupTestGateway(t)
		invalid := request
		invalid.Phone = ""

		w := gw.do(jsonRequest(http.MethodPost, "/api/session/register", invalid), "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Phone number is required", decodeError(t, w).Error)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		gw := setupTestGateway(t)
		gw.expectClient(nil)
		gw.client.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.FromResponse(400, "Email already in use")).Once()

		w := gw.do(jsonRequest(http.MethodPost, "/api/session/register", request), "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already in use", decodeError(t, w).Error)
	})
}

func TestSessionHandler_CurrentUser(t *testing.T) {
	t.Run("NoCookie", func(t *testing.T) {
		gw := setupTestGateway(t)

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/session/me", nil), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "redirect_login", decodeError(t, w).Action)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		gw := setupTestGateway(t)

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/session/me", nil), "does-not-exist")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("SeedsBackendCookies", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)}, ports.StoredCookie{Name: "JSESSIONID", Value: "backend-1"})
		gw.expectClient(func(jar http.CookieJar) {
			cookies := jar.Cookies(backendOrigin())
			require.Len(t, cookies, 1)
			assert.Equal(t, "backend-1", cookies[0].Value)
		})
		gw.client.EXPECT().GetCurrentUser(mock.Anything).
			Return(&farm.Session{ID: farm.NumberID(1), FirstName: "Amina"}, nil).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/session/me", nil), id)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Amina")

		stored, err := gw.sessions.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Amina", stored.User.FirstName)
	})

	t.Run("ExpiredBackendSessionIsDropped", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
		gw.expectClient(nil)
		gw.client.EXPECT().GetCurrentUser(mock.Anything).Return(nil, errors.FromResponse(401, "")).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/session/me", nil), id)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Session expired. Please log in again.", decodeError(t, w).Error)

		_, err := gw.sessions.Get(context.Background(), id)
		assert.True(t, errors.IsNotFoundError(err))
		require.NotNil(t, sessionCookie(w))
		assert.Equal(t, "", sessionCookie(w).Value)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	t.Run("Acknowledged", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
		gw.expectClient(nil)
		gw.client.EXPECT().Logout(mock.Anything).Return(farm.LogoutResult{Acknowledged: true, Message: "Logged out"}).Once()

		w := gw.do(httptest.NewRequest(http.MethodPost, "/api/session/logout", nil), id)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"acknowledged":true,"message":"Logged out"}`, w.Body.String())
		_, err := gw.sessions.Get(context.Background(), id)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("BackendFailureStillLogsOut", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
		gw.expectClient(nil)
		gw.client.EXPECT().Logout(mock.Anything).Return(farm.LogoutResult{Acknowledged: false, Message: "Logged out locally"}).Once()

		w := gw.do(httptest.NewRequest(http.MethodPost, "/api/session/logout", nil), id)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, gw.sessions.Len())
	})

	t.Run("WithoutSession", func(t *testing.T) {
		gw := setupTestGateway(t)

		w := gw.do(httptest.NewRequest(http.MethodPost, "/api/session/logout", nil), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"acknowledged":false,"message":"Logged out locally"}`, w.Body.String())
	})
}
