package api

import (
	"net/http"

	"farmwatch.app/internal/adapters/external"
	"farmwatch.app/internal/core/auth"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"farmwatch.app/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const storedSessionKey = "storedSession"

// Session events recorded by the metrics collector
const (
	eventLogin    = "login"
	eventLogout   = "logout"
	eventExpired  = "expired"
	eventRegister = "register"
)

// LoginRequest represents the HTTP request for signing in
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

// RegisterRequest represents the HTTP request for creating an account
type RegisterRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required"`
	LastName  string `json:"lastName" form:"lastName" binding:"required"`
	Username  string `json:"username" form:"username" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
}

// UserResponse wraps the normalized user
type UserResponse struct {
	User farm.Session `json:"user"`
}

// login handles POST /api/session/login requests
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var httpReq LoginRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		s.handleError(c, errors.OpLogin, bindingError(err, auth.Credentials{Email: httpReq.Email, Password: httpReq.Password}))
		return
	}

	jar := external.NewSessionJar(s.clientFactory.BackendURL(), nil)
	authUseCase, err := s.authUseCase(jar)
	if err != nil {
		s.handleError(c, errors.OpLogin, err)
		return
	}

	user, err := authUseCase.Login(c.Request.Context(), auth.Credentials{Email: httpReq.Email, Password: httpReq.Password})
	if err != nil {
		s.handleError(c, errors.OpLogin, err)
		return
	}

	now := s.now()
	stored := &ports.StoredSession{
		ID:        uuid.NewString(),
		User:      *user,
		Cookies:   jar.Stored(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.SessionTTL),
	}
	if err := s.sessions.Save(c.Request.Context(), stored); err != nil {
		s.handleError(c, errors.OpLogin, err)
		return
	}

	s.setSessionCookie(c, stored.ID)
	s.metrics.RecordSessionEvent(c.Request.Context(), eventLogin)
	c.JSON(http.StatusOK, UserResponse{User: *user})
}

// register handles POST /api/session/register requests. No session is
// stored: the user signs in afterwards.
func (s *HTTPServerAdapter) register(c *gin.Context) {
	var httpReq RegisterRequest
	registration := func() farm.Registration {
		return farm.Registration{
			FirstName: httpReq.FirstName,
			LastName:  httpReq.LastName,
			Username:  httpReq.Username,
			Email:     httpReq.Email,
			Phone:     httpReq.Phone,
			Password:  httpReq.Password,
		}
	}

	if err := c.ShouldBind(&httpReq); err != nil {
		s.handleError(c, errors.OpRegister, bindingError(err, registration()))
		return
	}

	authUseCase, err := s.authUseCase(external.NewSessionJar(s.clientFactory.BackendURL(), nil))
	if err != nil {
		s.handleError(c, errors.OpRegister, err)
		return
	}

	result, err := authUseCase.Register(c.Request.Context(), registration())
	if err != nil {
		s.handleError(c, errors.OpRegister, err)
		return
	}

	s.metrics.RecordSessionEvent(c.Request.Context(), eventRegister)
	c.JSON(http.StatusCreated, result)
}

// logout handles POST /api/session/logout requests. It always answers 200:
// the gateway session is dropped whatever the backend says.
func (s *HTTPServerAdapter) logout(c *gin.Context) {
	result := farm.LogoutResult{Acknowledged: false, Message: "Logged out locally"}

	stored, err := s.lookupSession(c)
	if err == nil {
		if authUseCase, err := s.authUseCase(external.NewSessionJar(s.clientFactory.BackendURL(), stored.Cookies)); err == nil {
			result = authUseCase.Logout(c.Request.Context())
		}
		s.dropSession(c, stored.ID, eventLogout)
	}

	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, result)
}

// currentUser handles GET /api/session/me requests
func (s *HTTPServerAdapter) currentUser(c *gin.Context) {
	stored := storedSession(c)
	jar := external.NewSessionJar(s.clientFactory.BackendURL(), stored.Cookies)

	authUseCase, err := s.authUseCase(jar)
	if err != nil {
		s.handleError(c, errors.OpCurrentUser, err)
		return
	}

	user, err := authUseCase.CurrentUser(c.Request.Context())
	if err != nil {
		s.failSession(c, errors.OpCurrentUser, stored, err)
		return
	}

	stored.User = *user
	s.refreshStoredSession(c, stored, jar, true)
	c.JSON(http.StatusOK, UserResponse{User: *user})
}

// requireSession loads the gateway session named by the session cookie
func (s *HTTPServerAdapter) requireSession(c *gin.Context) {
	stored, err := s.lookupSession(c)
	if err != nil {
		if errors.IsNotFoundError(err) {
			s.clearSessionCookie(c)
			err = errors.NewAuthError("no active session")
		}
		s.handleError(c, errors.OpCurrentUser, err)
		return
	}

	c.Set(storedSessionKey, stored)
	c.Next()
}

func (s *HTTPServerAdapter) lookupSession(c *gin.Context) (*ports.StoredSession, error) {
	id, err := c.Cookie(SessionCookieName)
	if err != nil || id == "" {
		return nil, errors.NewNotFoundError("session cookie not present")
	}
	return s.sessions.Get(c.Request.Context(), id)
}

func storedSession(c *gin.Context) *ports.StoredSession {
	return c.MustGet(storedSessionKey).(*ports.StoredSession)
}

// failSession reports err and forgets the gateway session when the backend
// no longer recognises it
func (s *HTTPServerAdapter) failSession(c *gin.Context, op errors.Operation, stored *ports.StoredSession, err error) {
	if errors.IsAuthError(err) {
		s.dropSession(c, stored.ID, eventExpired)
		s.clearSessionCookie(c)
	}
	s.handleError(c, op, err)
}

func (s *HTTPServerAdapter) dropSession(c *gin.Context, id string, event string) {
	if err := s.sessions.Delete(c.Request.Context(), id); err != nil {
		s.logger.Warn("Failed to delete gateway session",
			ports.F("store", s.sessions.Name()),
			ports.F("error", err.Error()))
	}
	s.metrics.RecordSessionEvent(c.Request.Context(), event)
}

// refreshStoredSession saves the session again when the backend rotated
// its cookies or force is set
func (s *HTTPServerAdapter) refreshStoredSession(c *gin.Context, stored *ports.StoredSession, jar *external.SessionJar, force bool) {
	cookies := jar.Stored()
	if !force && external.SameCookies(stored.Cookies, cookies) {
		return
	}
	if len(cookies) > 0 {
		stored.Cookies = cookies
	}
	if err := s.sessions.Save(c.Request.Context(), stored); err != nil {
		s.logger.Warn("Failed to update gateway session",
			ports.F("store", s.sessions.Name()),
			ports.F("error", err.Error()))
	}
}

func (s *HTTPServerAdapter) authUseCase(jar *external.SessionJar) (*auth.UseCase, error) {
	defaults := s.config.DefaultCoordinates
	return auth.NewUseCase(auth.UseCaseDependencies{
		Client:             s.clientFactory.NewClient(jar),
		Logger:             s.logger,
		DefaultCoordinates: &defaults,
	})
}

func (s *HTTPServerAdapter) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, id, int(s.config.SessionTTL.Seconds()), "/", "", s.config.SecureCookies, true)
}

func (s *HTTPServerAdapter) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.config.SecureCookies, true)
}

// bindingError turns a gin binding failure into the message the form shows.
// form is checked with the same rules to name the first bad field; a body
// that could not be decoded at all gets a generic message.
func bindingError(err error, form interface{}) error {
	if fieldErr := validation.Struct(form); fieldErr != nil {
		return fieldErr
	}
	return errors.NewValidationError("Invalid request format")
}
