package api

import (
	"net/http"

	"farmwatch.app/internal/adapters/external"
	"farmwatch.app/internal/core/dashboard"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// SectionResponse carries one dashboard section: its data, or the error
// that kept it from loading
type SectionResponse struct {
	Data  interface{}    `json:"data,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// DashboardResponse is the full dashboard for the signed-in user
type DashboardResponse struct {
	User        *farm.Session    `json:"user"`
	Coordinates farm.Coordinates `json:"coordinates"`
	Weather     SectionResponse  `json:"weather"`
	Soil        SectionResponse  `json:"soil"`
	Crop        SectionResponse  `json:"crop"`
	Sensors     SectionResponse  `json:"sensors"`
}

// SensorsQuery represents the paging parameters of GET /api/sensors
type SensorsQuery struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func sectionResponse[T any](name dashboard.SectionName, section dashboard.Section[T]) SectionResponse {
	if section.Err != nil {
		body := errorBody(name.Operation(), section.Err)
		return SectionResponse{Error: &body}
	}
	return SectionResponse{Data: section.Data}
}

func newDashboardResponse(dash *dashboard.Dashboard) DashboardResponse {
	return DashboardResponse{
		User:        dash.User,
		Coordinates: dash.Coordinates,
		Weather:     sectionResponse(dashboard.SectionWeather, dash.Weather),
		Soil:        sectionResponse(dashboard.SectionSoil, dash.Soil),
		Crop:        sectionResponse(dashboard.SectionCrop, dash.Crop),
		Sensors:     sectionResponse(dashboard.SectionSensors, dash.Sensors),
	}
}

// getDashboard handles GET /api/dashboard requests. Failed sections are
// reported inside a 200 response. A section rejected by the backend still
// ends the gateway session.
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	stored := storedSession(c)
	jar := external.NewSessionJar(s.clientFactory.BackendURL(), stored.Cookies)

	dashboardUseCase, err := s.dashboardUseCase(jar)
	if err != nil {
		s.handleError(c, errors.OpDashboard, err)
		return
	}

	dash, err := dashboardUseCase.Load(c.Request.Context())
	if err != nil {
		s.failSession(c, errors.OpDashboard, stored, err)
		return
	}

	if dash.SessionRejected() {
		s.dropSession(c, stored.ID, eventExpired)
		s.clearSessionCookie(c)
	} else {
		stored.User = *dash.User
		s.refreshStoredSession(c, stored, jar, false)
	}
	c.JSON(http.StatusOK, newDashboardResponse(dash))
}

// refreshSection handles GET /api/dashboard/:section requests
func (s *HTTPServerAdapter) refreshSection(c *gin.Context) {
	name, err := dashboard.ParseSection(c.Param("section"))
	if err != nil {
		s.handleError(c, errors.OpDashboard, err)
		return
	}

	stored := storedSession(c)
	jar := external.NewSessionJar(s.clientFactory.BackendURL(), stored.Cookies)

	dashboardUseCase, err := s.dashboardUseCase(jar)
	if err != nil {
		s.handleError(c, name.Operation(), err)
		return
	}

	coords := stored.User.CoordinatesOr(s.config.DefaultCoordinates)
	dash, err := dashboardUseCase.Refresh(c.Request.Context(), name, coords)
	if err != nil {
		s.failSession(c, name.Operation(), stored, err)
		return
	}

	s.refreshStoredSession(c, stored, jar, false)

	response := newDashboardResponse(dash)
	switch name {
	case dashboard.SectionWeather:
		c.JSON(http.StatusOK, response.Weather)
	case dashboard.SectionSoil:
		c.JSON(http.StatusOK, response.Soil)
	case dashboard.SectionCrop:
		c.JSON(http.StatusOK, response.Crop)
	default:
		c.JSON(http.StatusOK, response.Sensors)
	}
}

// getSensors handles GET /api/sensors requests
func (s *HTTPServerAdapter) getSensors(c *gin.Context) {
	var query SensorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.OpSensors, errors.NewValidationError("page and size must be numbers"))
		return
	}

	stored := storedSession(c)
	jar := external.NewSessionJar(s.clientFactory.BackendURL(), stored.Cookies)

	dashboardUseCase, err := s.dashboardUseCase(jar)
	if err != nil {
		s.handleError(c, errors.OpSensors, err)
		return
	}

	page, err := dashboardUseCase.Sensors(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		s.failSession(c, errors.OpSensors, stored, err)
		return
	}

	s.refreshStoredSession(c, stored, jar, false)
	c.JSON(http.StatusOK, page)
}

func (s *HTTPServerAdapter) dashboardUseCase(jar *external.SessionJar) (*dashboard.UseCase, error) {
	defaults := s.config.DefaultCoordinates
	return dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Client:             s.clientFactory.NewClient(jar),
		Logger:             s.logger,
		DefaultCoordinates: &defaults,
	})
}
