// Package routes maps a playground base URL and path identifiers to the
// fully-qualified URLs the client requests.
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyBase  = errors.New("routes: empty base URL")
	ErrEmptyParam = errors.New("routes: empty path parameter")
)

// Resolver builds request URLs, one method per operation kind.
type Resolver interface {
	Agents(endpoint string) (string, error)
	Status(base string) (string, error)
	Sessions(base, agentID string) (string, error)
	Session(base, agentID, sessionID string) (string, error)
	DeleteSession(base, agentID, sessionID string) (string, error)
}

// Default resolves the playground layout under a version prefix:
//
//	<base><prefix>/playground/agents
//	<base><prefix>/playground/status
//	<base><prefix>/playground/agents/<agent>/sessions
//	<base><prefix>/playground/agents/<agent>/sessions/<session>
type Default struct {
	Prefix string
}

// New returns a Default resolver. An empty prefix means "/v1".
func New(prefix string) *Default {
	if prefix == "" {
		prefix = "/v1"
	}
	return &Default{Prefix: "/" + strings.Trim(prefix, "/")}
}

func (d *Default) Agents(endpoint string) (string, error) {
	return d.build(endpoint, "agents")
}

func (d *Default) Status(base string) (string, error) {
	return d.build(base, "status")
}

func (d *Default) Sessions(base, agentID string) (string, error) {
	return d.build(base, "agents", agentID, "sessions")
}

func (d *Default) Session(base, agentID, sessionID string) (string, error) {
	return d.build(base, "agents", agentID, "sessions", sessionID)
}

func (d *Default) DeleteSession(base, agentID, sessionID string) (string, error) {
	return d.Session(base, agentID, sessionID)
}

func (d *Default) build(base string, segments ...string) (string, error) {
	u, err := parseBase(base)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(u.EscapedPath(), "/"))
	if d.Prefix != "/" {
		b.WriteString(d.Prefix)
	}
	b.WriteString("/playground")
	for _, s := range segments {
		if s == "" {
			return "", ErrEmptyParam
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}

	u.RawPath = b.String()
	u.Path, err = url.PathUnescape(u.RawPath)
	if err != nil {
		return "", fmt.Errorf("routes: %w", err)
	}
	return u.String(), nil
}

// parseBase accepts an absolute http(s) URL. Query and fragment are dropped.
func parseBase(base string) (*url.URL, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, ErrEmptyBase
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("routes: invalid base %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("routes: base %q must be an absolute URL", base)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawPath = ""
	return u, nil
}

// Funcs adapts plain functions to a Resolver. Nil fields fall back to Default
// with the "/v1" prefix.
type Funcs struct {
	AgentsFunc        func(endpoint string) (string, error)
	StatusFunc        func(base string) (string, error)
	SessionsFunc      func(base, agentID string) (string, error)
	SessionFunc       func(base, agentID, sessionID string) (string, error)
	DeleteSessionFunc func(base, agentID, sessionID string) (string, error)
}

var fallback = New("")

func (f Funcs) Agents(endpoint string) (string, error) {
	if f.AgentsFunc != nil {
		return f.AgentsFunc(endpoint)
	}
	return fallback.Agents(endpoint)
}

func (f Funcs) Status(base string) (string, error) {
	if f.StatusFunc != nil {
		return f.StatusFunc(base)
	}
	return fallback.Status(base)
}

func (f Funcs) Sessions(base, agentID string) (string, error) {
	if f.SessionsFunc != nil {
		return f.SessionsFunc(base, agentID)
	}
	return fallback.Sessions(base, agentID)
}

func (f Funcs) Session(base, agentID, sessionID string) (string, error) {
	if f.SessionFunc != nil {
		return f.SessionFunc(base, agentID, sessionID)
	}
	return fallback.Session(base, agentID, sessionID)
}

func (f Funcs) DeleteSession(base, agentID, sessionID string) (string, error) {
	if f.DeleteSessionFunc != nil {
		return f.DeleteSessionFunc(base, agentID, sessionID)
	}
	return fallback.DeleteSession(base, agentID, sessionID)
}
