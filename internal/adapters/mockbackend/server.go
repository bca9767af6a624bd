// Package mockbackend is an in-memory stand-in for the farm backend and
// the forecast service. It serves the same paths and payload shapes, keeps
// users and cookie sessions in memory, and is used by the mock-backend
// command and by end-to-end tests of the API client.
package mockbackend

import (
	"net/http"
	"sync"
	"time"

	"farmwatch.app/internal/core/farm"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the backend issues on login
const SessionCookieName = "JSESSIONID"

// Email addresses that make the login endpoint fail in a fixed way
const (
	ServerErrorEmail = "servererror@farm.test"
	SlowEmail        = "slow@farm.test"
)

// User is an account as the backend stores it, password included
type User struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Options configures the mock backend
type Options struct {
	// Users seeds the account list; DemoUser is used when empty
	Users []User
	// Sensors seeds the sensor list; 23 generated sensors are used when empty
	Sensors []farm.SensorRecord
	Soil    *farm.SoilReading
	Crop    *farm.CropRecord
	// Today anchors the forecast series
	Today func() time.Time
	// SlowDelay is how long a login for SlowEmail hangs
	SlowDelay time.Duration
}

// Server is the mock backend
type Server struct {
	router   *gin.Engine
	mutex    sync.RWMutex
	users    map[string]User
	sessions map[string]string
	nextID   int64
	sensors  []farm.SensorRecord
	soil     farm.SoilReading
	crop     farm.CropRecord
	today    func() time.Time
	slow     time.Duration
}

// DemoUser is the account seeded by default
func DemoUser() User {
	latitude, longitude := 0.3476, 32.5825
	return User{
		ID:        1,
		FirstName: "Amina",
		LastName:  "Okello",
		Username:  "amina",
		Email:     "farmer@farm.test",
		Phone:     "+256700000001",
		Password:  "secret1",
		Role:      farm.RoleCustomer,
		Latitude:  &latitude,
		Longitude: &longitude,
	}
}

// NewServer creates a mock backend with its routes registered
func NewServer(opts Options) *Server {
	users := opts.Users
	if len(users) == 0 {
		users = []User{DemoUser()}
	}
	sensors := opts.Sensors
	if len(sensors) == 0 {
		sensors = generateSensors(23)
	}
	soil := farm.SoilReading{
		Moisture:   0.72,
		PH:         6.8,
		Nutrients:  farm.Nutrients{Nitrogen: 0.65, Phosphorus: 0.48, Potassium: 0.58},
		Resistance: 0.35,
	}
	if opts.Soil != nil {
		soil = *opts.Soil
	}
	crop := farm.CropRecord{
		CurrentCrop:     "Maize",
		PlantingDate:    "2023-04-15",
		HarvestEstimate: "2023-08-30",
		GrowthStage:     "Vegetative",
		HealthStatus:    farm.HealthGood,
	}
	if opts.Crop != nil {
		crop = *opts.Crop
	}
	today := opts.Today
	if today == nil {
		today = time.Now
	}
	slow := opts.SlowDelay
	if slow <= 0 {
		slow = 15 * time.Second
	}

	s := &Server{
		router:   gin.New(),
		users:    make(map[string]User, len(users)),
		sessions: make(map[string]string),
		sensors:  sensors,
		soil:     soil,
		crop:     crop,
		today:    today,
		slow:     slow,
	}
	for _, user := range users {
		s.users[user.Email] = user
		if user.ID >= s.nextID {
			s.nextID = user.ID
		}
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery())

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := s.router.Group("/api/auth")
	{
		authRoutes.POST("/login", s.login)
		authRoutes.POST("/register", s.register)
		authRoutes.POST("/logout", s.logout)
		authRoutes.GET("/me", s.requireUser, s.me)
	}

	api := s.router.Group("/api", s.requireUser)
	{
		api.GET("/soil", s.getSoil)
		api.GET("/crop", s.getCrop)
		api.GET("/sensor/all", s.getSensors)
	}

	s.router.GET("/v1/forecast", s.forecast)
}

// Router returns the handler serving every route
func (s *Server) Router() *gin.Engine {
	return s.router
}

// SessionCount returns the number of live backend sessions
func (s *Server) SessionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions)
}

// ExpireSessions drops every backend session, as a backend restart would
func (s *Server) ExpireSessions() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions = make(map[string]string)
}
