package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/soyeahso/playground/internal/logging"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		switch {
		case err != nil:
			issues = append(issues, ValidationIssue{
				Path:    "endpoint",
				Message: fmt.Sprintf("not a valid URL: %v", err),
			})
		case u.Scheme != "http" && u.Scheme != "https":
			issues = append(issues, ValidationIssue{
				Path:    "endpoint",
				Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
			})
		case u.Host == "":
			issues = append(issues, ValidationIssue{
				Path:    "endpoint",
				Message: "host is required",
			})
		}
	}

	if cfg.Routes.Prefix != "" && !strings.HasPrefix(cfg.Routes.Prefix, "/") {
		issues = append(issues, ValidationIssue{
			Path:    "routes.prefix",
			Message: fmt.Sprintf("must start with /, got %q", cfg.Routes.Prefix),
		})
	}

	if cfg.HTTP.TimeoutSeconds < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "http.timeoutSeconds",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.HTTP.TimeoutSeconds),
		})
	}

	if cfg.Logging.Level != "" && !slices.Contains(logging.ValidLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", logging.ValidLevels, cfg.Logging.Level),
		})
	}

	validConsoleStyles := []string{"pretty", "compact", "json"}
	if cfg.Logging.ConsoleStyle != "" && !slices.Contains(validConsoleStyles, cfg.Logging.ConsoleStyle) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.consoleStyle",
			Message: fmt.Sprintf("must be one of %v, got %q", validConsoleStyles, cfg.Logging.ConsoleStyle),
		})
	}

	validNotifyModes := []string{"console", "log", "silent"}
	if cfg.Notify.Mode != "" && !slices.Contains(validNotifyModes, cfg.Notify.Mode) {
		issues = append(issues, ValidationIssue{
			Path:    "notify.mode",
			Message: fmt.Sprintf("must be one of %v, got %q", validNotifyModes, cfg.Notify.Mode),
		})
	}

	if strings.ContainsAny(cfg.Identity.UserID, "\r\n") {
		issues = append(issues, ValidationIssue{
			Path:    "identity.userId",
			Message: "must not contain line breaks",
		})
	}

	return issues
}
