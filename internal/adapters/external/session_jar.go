package external

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"farmwatch.app/internal/ports"
)

// SessionJar is a cookie jar bound to the backend origin. It is seeded
// from stored cookies and records every cookie the backend sets on its
// host, whatever the cookie path, so a session can outlive the client
// that used it.
type SessionJar struct {
	http.CookieJar
	origin *url.URL

	mu   sync.Mutex
	held map[string]string
}

// NewSessionJar creates a jar for baseURL seeded with stored
func NewSessionJar(baseURL string, stored []ports.StoredCookie) *SessionJar {
	jar := NewCookieJar()

	origin, err := url.Parse(baseURL)
	if err != nil || origin.Host == "" {
		return &SessionJar{CookieJar: jar}
	}

	held := make(map[string]string, len(stored))
	if len(stored) > 0 {
		cookies := make([]*http.Cookie, 0, len(stored))
		for _, cookie := range stored {
			cookies = append(cookies, &http.Cookie{Name: cookie.Name, Value: cookie.Value, Path: "/"})
			held[cookie.Name] = cookie.Value
		}
		jar.SetCookies(origin, cookies)
	}

	return &SessionJar{CookieJar: jar, origin: origin, held: held}
}

// SetCookies stores cookies in the jar and tracks those set by the backend
func (j *SessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.CookieJar.SetCookies(u, cookies)
	if j.origin == nil || !strings.EqualFold(u.Hostname(), j.origin.Hostname()) {
		return
	}

	now := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, cookie := range cookies {
		if cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(now)) {
			delete(j.held, cookie.Name)
			continue
		}
		j.held[cookie.Name] = cookie.Value
	}
}

// Stored returns the cookies the backend currently holds for the session,
// sorted by name
func (j *SessionJar) Stored() []ports.StoredCookie {
	if j.origin == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	stored := make([]ports.StoredCookie, 0, len(j.held))
	for name, value := range j.held {
		stored = append(stored, ports.StoredCookie{Name: name, Value: value})
	}
	sort.Slice(stored, func(a, b int) bool { return stored[a].Name < stored[b].Name })
	return stored
}

// SameCookies reports whether a and b hold the same name/value pairs
func SameCookies(a, b []ports.StoredCookie) bool {
	if len(a) != len(b) {
		return false
	}
	values := make(map[string]string, len(a))
	for _, cookie := range a {
		values[cookie.Name] = cookie.Value
	}
	for _, cookie := range b {
		if value, ok := values[cookie.Name]; !ok || value != cookie.Value {
			return false
		}
	}
	return true
}
