package farm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RoleCustomer is the only role the client ever registers
const RoleCustomer = "CUSTOMER"

// ID is a backend identifier that may arrive as a JSON number or string.
// It encodes back to the same JSON kind it was decoded from.
type ID struct {
	value   string
	numeric bool
}

// StringID is an id the backend sends as a JSON string
func StringID(s string) ID {
	return ID{value: s}
}

// NumberID is an id the backend sends as a JSON number
func NumberID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

// UnmarshalJSON decodes a JSON number or string into the id
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ID{}
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}

// MarshalJSON writes the id as the JSON kind it arrived as. A zero id is null.
func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id.IsZero():
		return []byte("null"), nil
	case id.numeric:
		return []byte(id.value), nil
	default:
		return json.Marshal(id.value)
	}
}

// Session is the normalized, password-free identity of a logged-in user
type Session struct {
	ID         ID                         `json:"id,omitzero"`
	FirstName  string                     `json:"firstName,omitempty"`
	LastName   string                     `json:"lastName,omitempty"`
	Username   string                     `json:"username,omitempty"`
	Email      string                     `json:"email,omitempty"`
	Phone      string                     `json:"phone,omitempty"`
	Role       string                     `json:"role,omitempty"`
	Latitude   *float64                   `json:"latitude,omitempty"`
	Longitude  *float64                   `json:"longitude,omitempty"`
	Attributes map[string]json.RawMessage `json:"attributes,omitempty"`
}

// FullName joins first and last name
func (s *Session) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Coordinates returns the session's location. Each coordinate that is
// missing or zero falls back to DefaultCoordinates on its own.
func (s *Session) Coordinates() Coordinates {
	return s.CoordinatesOr(DefaultCoordinates)
}

// CoordinatesOr is Coordinates with caller-supplied defaults
func (s *Session) CoordinatesOr(defaults Coordinates) Coordinates {
	coords := defaults
	if s == nil {
		return coords
	}
	if s.Latitude != nil && *s.Latitude != 0 {
		coords.Latitude = *s.Latitude
	}
	if s.Longitude != nil && *s.Longitude != 0 {
		coords.Longitude = *s.Longitude
	}
	return coords
}

// Coordinates is a point used for the weather lookup
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCoordinates is used when the user profile has no location (near Kampala)
var DefaultCoordinates = Coordinates{Latitude: 0.375, Longitude: 32.625}

// Registration is the account data sent to the register endpoint
type Registration struct {
	FirstName string `json:"firstName" validate:"required" label:"First Name"`
	LastName  string `json:"lastName" validate:"required" label:"Last Name"`
	Username  string `json:"username" validate:"required" label:"Username"`
	Email     string `json:"email" validate:"required,email" label:"Email"`
	Phone     string `json:"phone" validate:"required" label:"Phone number"`
	Password  string `json:"password" validate:"required,min=6" label:"Password"`
}

// RegistrationResult is returned by a successful registration
type RegistrationResult struct {
	Session       Session `json:"user"`
	Message       string  `json:"message"`
	ServerMessage string  `json:"serverMessage,omitempty"`
}

// RegistrationSuccessMessage is the fixed confirmation message
const RegistrationSuccessMessage = "Registration successful"

// LogoutResult reports whether the backend acknowledged a logout.
// The local session is torn down either way.
type LogoutResult struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message"`
}

var sessionKeys = map[string]bool{
	"id": true, "firstName": true, "lastName": true, "username": true, "email": true,
	"phone": true, "role": true, "latitude": true, "longitude": true,
}

// StripPassword removes every password key from a decoded user object
func StripPassword(fields map[string]json.RawMessage) map[string]json.RawMessage {
	for key := range fields {
		if strings.EqualFold(key, "password") {
			delete(fields, key)
		}
	}
	return fields
}

// NormalizeUser turns an auth response body into a Session. The user is
// read from the "user" member when it is an object, otherwise from the body
// itself. Password fields are dropped before anything is decoded.
func NormalizeUser(body []byte) (*Session, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", err)
	}

	fields := envelope
	if raw, ok := envelope["user"]; ok && isObject(raw) {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("decode user object: %w", err)
		}
		fields = nested
	}
	fields = StripPassword(fields)

	clean, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode user object: %w", err)
	}

	var session Session
	if err := json.Unmarshal(clean, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	for key, value := range fields {
		if sessionKeys[key] || key == "user" {
			continue
		}
		if session.Attributes == nil {
			session.Attributes = make(map[string]json.RawMessage)
		}
		session.Attributes[key] = value
	}

	return &session, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}
