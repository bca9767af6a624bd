// Package external provides adapters for the farm backend, the public
// forecast service and the gateway session stores.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// DefaultTimeout is the ceiling applied to every outbound call
const DefaultTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewCookieJar creates a jar that scopes cookies by public suffix
func NewCookieJar() http.CookieJar {
	// cookiejar.New never returns an error
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

// apiResponse is a fully read response body with its status
type apiResponse struct {
	StatusCode int
	Body       []byte
}

// jsonTransport sends JSON requests and turns every failure into a
// classified error
type jsonTransport struct {
	client HTTPClient
	logger ports.Logger
	target string
}

func (t *jsonTransport) send(ctx context.Context, method, endpoint string, payload interface{}) (*apiResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(errors.ErrorTypeUnknown, "failed to encode request body", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeUnknown, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError("failed to reach "+t.target, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.logger.Warn("Failed to close response body", ports.F("target", t.target), ports.F("error", closeErr))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError("connection to "+t.target+" dropped while reading response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.FromResponse(resp.StatusCode, responseMessage(data))
	}

	return &apiResponse{StatusCode: resp.StatusCode, Body: data}, nil
}

// decode reads a 2xx body into out. A body that does not fit is a server
// failure carrying the response status.
func (r *apiResponse) decode(out interface{}) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return errors.NewServerError("unexpected response body", r.StatusCode, err)
	}
	return nil
}

func (r *apiResponse) empty() bool {
	return len(bytes.TrimSpace(r.Body)) == 0
}

// responseMessage extracts the structured message from an error body.
// The forecast service reports problems under "reason".
func responseMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"message", "reason"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

// resolve joins a relative path and query onto a base address
func resolve(baseURL, path string, query url.Values) (string, error) {
	endpoint, err := url.JoinPath(baseURL, path)
	if err != nil {
		return "", errors.NewConfigurationError("invalid base URL "+baseURL, err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint, nil
}
