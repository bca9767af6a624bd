package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Farm backend and weather
	ClientFactory FarmClientFactory

	// Gateway sessions
	SessionStore SessionStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
