package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"farmwatch.app/internal/adapters/api"
	"farmwatch.app/internal/adapters/database"
	"farmwatch.app/internal/adapters/mockbackend"
	"farmwatch.app/internal/config"
	"farmwatch.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backendURL string) *config.Config {
	cfg := config.Default()
	cfg.Backend.BaseURL = backendURL
	cfg.Backend.TimeoutMS = 2000
	cfg.Weather.BaseURL = backendURL
	cfg.Logging.Level = "error"
	return cfg
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, application.deps.Cleanup())
	})
	return application
}

func startBackend(t *testing.T) *httptest.Server {
	t.Helper()
	backend := mockbackend.NewServer(mockbackend.Options{})
	server := httptest.NewServer(backend.Router())
	t.Cleanup(server.Close)
	return server
}

func serve(router http.Handler, req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(api.LoginRequest{Email: "farmer@farm.test", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/session/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := serve(router, req, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret1")

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == api.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no gateway session cookie")
	return nil
}

func TestApplication_GatewayAgainstMockBackend(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T, cfg *config.Config)
	}{
		{"MemoryStore", func(t *testing.T, cfg *config.Config) {
			cfg.Session.StoreType = config.SessionStoreMemory
		}},
		{"SQLiteStore", func(t *testing.T, cfg *config.Config) {
			cfg.Session.StoreType = config.SessionStoreDatabase
			cfg.Session.Database.Driver = "sqlite"
			cfg.Session.Database.SQLitePath = filepath.Join(t.TempDir(), "sessions.db")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := startBackend(t)
			cfg := testConfig(backend.URL)
			tt.store(t, cfg)
			router := newTestApplication(t, cfg).GetRouter()

			cookie := login(t, router)

			w := serve(router, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), cookie)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var dash struct {
				User    map[string]interface{}    `json:"user"`
				Weather map[string]json.RawMessage `json:"weather"`
				Soil    map[string]json.RawMessage `json:"soil"`
				Crop    map[string]json.RawMessage `json:"crop"`
				Sensors map[string]json.RawMessage `json:"sensors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
			assert.Equal(t, "amina", dash.User["username"])
			assert.NotContains(t, dash.User, "password")
			for name, section := range map[string]map[string]json.RawMessage{
				"weather": dash.Weather, "soil": dash.Soil, "crop": dash.Crop, "sensors": dash.Sensors,
			} {
				assert.Contains(t, section, "data", name)
				assert.NotContains(t, section, "error", name)
			}

			w = serve(router, httptest.NewRequest(http.MethodGet, "/api/sensors?page=2&size=10", nil), cookie)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"last":true`)

			w = serve(router, httptest.NewRequest(http.MethodPost, "/api/session/logout", nil), cookie)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"acknowledged":true`)

			w = serve(router, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), cookie)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestApplication_UnreachableBackend(t *testing.T) {
	backend := startBackend(t)
	cfg := testConfig(backend.URL)
	router := newTestApplication(t, cfg).GetRouter()
	backend.Close()

	body, _ := json.Marshal(api.LoginRequest{Email: "farmer@farm.test", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/session/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(router, req, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var response api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "retry", response.Action)
}

func TestApplication_HealthAndMetrics(t *testing.T) {
	backend := startBackend(t)
	router := newTestApplication(t, testConfig(backend.URL)).GetRouter()

	w := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil), nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"sessionStore"`)

	login(t, router)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `farm_client_requests_total{operation="login",outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), `farm_gateway_session_events_total{event="login"} 1`)
}

func TestApplication_InvalidStoreConfiguration(t *testing.T) {
	cfg := testConfig("http://localhost:1")
	cfg.Session.StoreType = config.SessionStoreRedis
	cfg.Session.Redis.Addr = "127.0.0.1:1"
	cfg.Session.Redis.DialTimeout = 1

	_, err := NewApplicationWithConfig(cfg)
	assert.Error(t, err)
}

func TestApplication_SweepSessions(t *testing.T) {
	backend := startBackend(t)
	cfg := testConfig(backend.URL)
	cfg.Session.StoreType = config.SessionStoreDatabase
	cfg.Session.Database.Driver = "sqlite"
	cfg.Session.Database.SQLitePath = filepath.Join(t.TempDir(), "sessions.db")
	application := newTestApplication(t, cfg)

	store, ok := application.ports.SessionStore.(*database.SessionRepositoryAdapter)
	require.True(t, ok)

	ctx := context.Background()
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, store.Save(ctx, &ports.StoredSession{ID: "old", CreatedAt: past, ExpiresAt: past.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &ports.StoredSession{ID: "fresh", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}))

	application.sweepSessions(ctx, store)

	var count int64
	require.NoError(t, application.deps.Database().Model(&database.SessionModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
