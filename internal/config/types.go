package config

// Config is the root configuration for the playground client.
type Config struct {
	Endpoint string         `yaml:"endpoint,omitempty"` // base URL of the playground service
	Routes   RoutesConfig   `yaml:"routes,omitempty"`
	Identity IdentityConfig `yaml:"identity,omitempty"`
	HTTP     HTTPConfig     `yaml:"http,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Notify   NotifyConfig   `yaml:"notify,omitempty"`
}

// RoutesConfig controls how request URLs are built from the endpoint.
type RoutesConfig struct {
	Prefix string `yaml:"prefix,omitempty"` // API version prefix, e.g. "/v1"
}

// IdentityConfig controls how the caller's user id is resolved.
type IdentityConfig struct {
	UserID   string `yaml:"userId,omitempty"`
	Generate bool   `yaml:"generate,omitempty"` // create and persist a random id when none exists
}

// HTTPConfig holds transport settings applied by the CLI.
type HTTPConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"` // 0 disables the deadline
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level,omitempty"`        // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	ConsoleStyle string `yaml:"consoleStyle,omitempty"` // "pretty" | "compact" | "json"
}

// NotifyConfig selects where user-visible warnings go.
type NotifyConfig struct {
	Mode string `yaml:"mode,omitempty"` // "console" | "log" | "silent"
}
