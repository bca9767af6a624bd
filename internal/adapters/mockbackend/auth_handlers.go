package mockbackend

import (
	"net/http"
	"strings"
	"time"

	"farmwatch.app/internal/core/farm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userKey = "user"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	User
	Role string `json:"role"`
}

func message(text string) gin.H {
	return gin.H{"message": text}
}

// login answers with the stored user, password included, the way the real
// backend does
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, message("Email and password are required"))
		return
	}

	switch req.Email {
	case ServerErrorEmail:
		c.JSON(http.StatusInternalServerError, message("Internal server error"))
		return
	case SlowEmail:
		select {
		case <-time.After(s.slow):
		case <-c.Request.Context().Done():
			return
		}
	}

	s.mutex.Lock()
	user, ok := s.users[req.Email]
	if !ok || user.Password != req.Password {
		s.mutex.Unlock()
		c.JSON(http.StatusUnauthorized, message("Bad credentials"))
		return
	}
	token := uuid.NewString()
	s.sessions[token] = user.Email
	s.mutex.Unlock()

	c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, message("Malformed registration"))
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Username) == "" || len(req.Password) < 6 {
		// bare 400 without a message
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Role != farm.RoleCustomer {
		c.JSON(http.StatusBadRequest, message("Only CUSTOMER accounts can self-register"))
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[req.Email]; exists {
		c.JSON(http.StatusBadRequest, message("Email already in use"))
		return
	}

	s.nextID++
	user := req.User
	user.ID = s.nextID
	user.Role = req.Role
	s.users[user.Email] = user

	c.JSON(http.StatusCreated, gin.H{"user": user, "message": "User registered successfully"})
}

func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil {
		s.mutex.Lock()
		delete(s.sessions, token)
		s.mutex.Unlock()
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, message("Logged out"))
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": c.MustGet(userKey).(User)})
}

// requireUser resolves the session cookie to a user or answers 401
func (s *Server) requireUser(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, message("Not authenticated"))
		return
	}

	s.mutex.RLock()
	email, ok := s.sessions[token]
	user, known := s.users[email]
	s.mutex.RUnlock()

	if !ok || !known {
		c.AbortWithStatusJSON(http.StatusUnauthorized, message("Session expired"))
		return
	}

	c.Set(userKey, user)
	c.Next()
}
