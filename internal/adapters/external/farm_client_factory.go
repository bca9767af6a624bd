package external

import (
	"net/http"

	"farmwatch.app/internal/ports"
)

// ClientDecorator wraps a FarmClient with cross-cutting behaviour
type ClientDecorator func(ports.FarmClient) ports.FarmClient

// FarmAPIClientFactory builds FarmAPIClients that share configuration but
// not cookies
type FarmAPIClientFactory struct {
	params     FarmAPIClientParams
	decorators []ClientDecorator
}

// NewFarmAPIClientFactory creates a factory. Decorators are applied in
// order, so the last one is outermost.
func NewFarmAPIClientFactory(params FarmAPIClientParams, decorators ...ClientDecorator) *FarmAPIClientFactory {
	return &FarmAPIClientFactory{
		params:     params,
		decorators: decorators,
	}
}

// NewClient builds a client whose session lives in jar
func (f *FarmAPIClientFactory) NewClient(jar http.CookieJar) ports.FarmClient {
	params := f.params
	params.Jar = jar

	var client ports.FarmClient = NewFarmAPIClient(params)
	for _, decorate := range f.decorators {
		client = decorate(client)
	}
	return client
}

// BackendURL returns the backend base address shared by every client
func (f *FarmAPIClientFactory) BackendURL() string {
	return f.params.BackendURL
}

// WithLogging returns a decorator adding structured logs
func WithLogging(logger ports.Logger) ClientDecorator {
	return func(client ports.FarmClient) ports.FarmClient {
		return NewFarmClientLoggingDecorator(client, logger)
	}
}

// WithMetrics returns a decorator recording call metrics
func WithMetrics(metrics ports.MetricsCollector) ClientDecorator {
	return func(client ports.FarmClient) ports.FarmClient {
		return NewInstrumentedFarmClient(client, metrics)
	}
}
