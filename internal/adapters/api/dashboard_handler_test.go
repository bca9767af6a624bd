package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_PartialFailure(t *testing.T) {
	gw := setupTestGateway(t)
	id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
	gw.expectClient(nil)
	gw.client.EXPECT().GetCurrentUser(mock.Anything).Return(&farm.Session{ID: farm.NumberID(1)}, nil).Once()
	gw.client.EXPECT().FetchWeatherData(mock.Anything, 0.375, 32.625).
		Return(nil, errors.NewNetworkError("failed to reach open-meteo", nil)).Once()
	gw.client.EXPECT().FetchSoilData(mock.Anything).Return(&farm.SoilReading{Moisture: 0.72}, nil).Once()
	gw.client.EXPECT().FetchCropData(mock.Anything).Return(&farm.CropRecord{CurrentCrop: "Maize"}, nil).Once()
	gw.client.EXPECT().FetchSensorData(mock.Anything, 0, 10).
		Return(&farm.SensorPage{Content: []farm.SensorRecord{}}, nil).Once()

	w := gw.do(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), id)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Weather struct {
			Error *ErrorResponse `json:"error"`
		} `json:"weather"`
		Crop struct {
			Data  farm.CropRecord `json:"data"`
			Error *ErrorResponse  `json:"error"`
		} `json:"crop"`
		Coordinates farm.Coordinates `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.NotNil(t, response.Weather.Error)
	assert.Equal(t, "NETWORK_ERROR", response.Weather.Error.Kind)
	assert.Equal(t, "retry", response.Weather.Error.Action)
	assert.Nil(t, response.Crop.Error)
	assert.Equal(t, "Maize", response.Crop.Data.CurrentCrop)
	assert.Equal(t, farm.DefaultCoordinates, response.Coordinates)
}

func TestDashboardHandler_ExpiredSession(t *testing.T) {
	gw := setupTestGateway(t)
	id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
	gw.expectClient(nil)
	gw.client.EXPECT().GetCurrentUser(mock.Anything).Return(nil, errors.FromResponse(401, "")).Once()

	w := gw.do(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), id)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, gw.sessions.Len())
}

func TestDashboardHandler_SectionRejectsSession(t *testing.T) {
	gw := setupTestGateway(t)
	id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
	gw.expectClient(nil)
	gw.client.EXPECT().GetCurrentUser(mock.Anything).Return(&farm.Session{ID: farm.NumberID(1)}, nil).Once()
	gw.client.EXPECT().FetchWeatherData(mock.Anything, 0.375, 32.625).
		Return(&farm.WeatherSnapshot{Temperature: 24}, nil).Once()
	gw.client.EXPECT().FetchSoilData(mock.Anything).Return(nil, errors.FromResponse(401, "")).Once()
	gw.client.EXPECT().FetchCropData(mock.Anything).Return(&farm.CropRecord{CurrentCrop: "Maize"}, nil).Once()
	gw.client.EXPECT().FetchSensorData(mock.Anything, 0, 10).
		Return(&farm.SensorPage{Content: []farm.SensorRecord{}}, nil).Once()

	w := gw.do(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), id)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Soil struct {
			Error *ErrorResponse `json:"error"`
		} `json:"soil"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Soil.Error)
	assert.Equal(t, "AUTH_ERROR", response.Soil.Error.Kind)

	assert.Equal(t, 0, gw.sessions.Len())
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestDashboardHandler_RefreshSection(t *testing.T) {
	latitude, longitude := -1.29, 36.82
	user := farm.Session{ID: farm.NumberID(1), Latitude: &latitude, Longitude: &longitude}

	t.Run("Weather", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, user)
		gw.expectClient(nil)
		gw.client.EXPECT().FetchWeatherData(mock.Anything, -1.29, 36.82).
			Return(&farm.WeatherSnapshot{Temperature: 21, Condition: farm.ConditionCloudy}, nil).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/dashboard/weather", nil), id)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"condition":"Cloudy"`)
	})

	t.Run("SoilFailure", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, user)
		gw.expectClient(nil)
		gw.client.EXPECT().FetchSoilData(mock.Anything).Return(nil, errors.FromResponse(503, "")).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/dashboard/soil", nil), id)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Failed to refresh soil data.", decodeError(t, w).Error)
	})

	t.Run("UnknownSection", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, user)

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/dashboard/rainfall", nil), id)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		gw.factory.AssertNotCalled(t, "NewClient", mock.Anything)
	})
}

func TestDashboardHandler_Sensors(t *testing.T) {
	t.Run("Paging", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
		gw.expectClient(nil)
		gw.client.EXPECT().FetchSensorData(mock.Anything, 2, 5).Return(&farm.SensorPage{
			Content:    []farm.SensorRecord{{ID: farm.NumberID(9), Name: "S9", Status: "ACTIVE"}},
			TotalPages: 3,
			Number:     2,
			Size:       5,
		}, nil).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/sensors?page=2&size=5", nil), id)

		require.Equal(t, http.StatusOK, w.Code)
		var page farm.SensorPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, "S9", page.Content[0].Name)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})
		gw.expectClient(nil)
		gw.client.EXPECT().FetchSensorData(mock.Anything, 0, 10).Return(&farm.SensorPage{Content: []farm.SensorRecord{}}, nil).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/sensors?page=-1&size=0", nil), id)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NonNumericPage", func(t *testing.T) {
		gw := setupTestGateway(t)
		id := gw.storeSession(t, farm.Session{ID: farm.NumberID(1)})

		w := gw.do(httptest.NewRequest(http.MethodGet, "/api/sensors?page=first", nil), id)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		gw := setupTestGateway(t)
		gw.health.EXPECT().CheckAll(mock.Anything).Return(ports.HealthReport{
			"backend": {Component: "backend", Status: ports.StatusHealthy},
		}).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("Unhealthy", func(t *testing.T) {
		gw := setupTestGateway(t)
		gw.health.EXPECT().CheckAll(mock.Anything).Return(ports.HealthReport{
			"backend":      {Component: "backend", Status: ports.StatusHealthy},
			"sessionStore": {Component: "sessionStore", Status: ports.StatusUnhealthy, Error: "connection refused"},
		}).Once()

		w := gw.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	gw := setupTestGateway(t)

	w := gw.do(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")

	assert.Equal(t, http.StatusOK, w.Code)
}
