package config

import "fmt"

const (
	DefaultEndpoint    = "http://localhost:7777"
	DefaultRoutePrefix = "/v1"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Routes: RoutesConfig{
			Prefix: DefaultRoutePrefix,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:        "warn",
			ConsoleStyle: "pretty",
		},
		Notify: NotifyConfig{
			Mode: "console",
		},
	}
}
