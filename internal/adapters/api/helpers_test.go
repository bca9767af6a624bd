package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"farmwatch.app/internal/adapters/external"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/mocks"
	"farmwatch.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBackendURL = "http://backend.test"

type testGateway struct {
	server   *HTTPServerAdapter
	router   *gin.Engine
	factory  *mocks.FarmClientFactory
	client   *mocks.FarmClient
	sessions *external.MemorySessionStore
	health   *mocks.SystemHealthChecker
	metrics  *mocks.MetricsCollector
}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	for n := 0; n <= 6; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return mockLogger
}

func setupTestGateway(t *testing.T) *testGateway {
	gin.SetMode(gin.TestMode)

	gw := &testGateway{
		factory:  mocks.NewFarmClientFactory(t),
		client:   mocks.NewFarmClient(t),
		sessions: external.NewMemorySessionStore(),
		health:   mocks.NewSystemHealthChecker(t),
		metrics:  mocks.NewMetricsCollector(t),
	}
	gw.factory.EXPECT().BackendURL().Return(testBackendURL).Maybe()
	gw.metrics.EXPECT().RecordSessionEvent(mock.Anything, mock.Anything).Maybe()

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:        ServerConfig{Port: 8080, SessionTTL: time.Hour, LogRequests: true},
		ClientFactory: gw.factory,
		SessionStore:  gw.sessions,
		HealthChecker: gw.health,
		Metrics:       gw.metrics,
		Logger:        setupLoggerMock(t),
		Gatherer:      prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	gw.server = server
	gw.router = server.GetRouter()
	return gw
}

// expectClient makes the factory hand out the shared client mock once
// and passes the jar it was given to inspect
func (gw *testGateway) expectClient(inspect func(jar http.CookieJar)) {
	gw.factory.EXPECT().NewClient(mock.Anything).
		Run(func(jar http.CookieJar) {
			if inspect != nil {
				inspect(jar)
			}
		}).
		Return(gw.client).Once()
}

// storeSession saves a gateway session and returns its id
func (gw *testGateway) storeSession(t *testing.T, user farm.Session, cookies ...ports.StoredCookie) string {
	session := &ports.StoredSession{
		ID:        "session-1",
		User:      user,
		Cookies:   cookies,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, gw.sessions.Save(context.Background(), session))
	return session.ID
}

func (gw *testGateway) do(req *http.Request, sessionID string) *httptest.ResponseRecorder {
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	gw.router.ServeHTTP(w, req)
	return w
}

func backendOrigin() *url.URL {
	u, _ := url.Parse(testBackendURL)
	return u
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	return nil
}
