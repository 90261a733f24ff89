// Package identity resolves the optional user id attached to every
// playground request.
package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/soyeahso/playground/internal/config"
)

// Source records where a resolved user id came from.
type Source string

const (
	SourceNone      Source = "none"
	SourceConfig    Source = "config"
	SourceFile      Source = "file"
	SourceGenerated Source = "generated"
)

// Identity is the resolved caller identity. An empty UserID means absent.
type Identity struct {
	UserID string
	Source Source
}

// Present reports whether a user id was resolved.
func (i Identity) Present() bool { return i.UserID != "" }

// Resolve determines the user id once at startup.
// Precedence: configured id, then the id persisted at file, then (when
// cfg.Generate is set) a freshly generated id written to file.
func Resolve(cfg config.IdentityConfig, file string) (Identity, error) {
	if id := strings.TrimSpace(cfg.UserID); id != "" {
		return Identity{UserID: id, Source: SourceConfig}, nil
	}

	if file != "" {
		id, err := readFile(file)
		if err != nil {
			return Identity{Source: SourceNone}, err
		}
		if id != "" {
			return Identity{UserID: id, Source: SourceFile}, nil
		}
	}

	if !cfg.Generate {
		return Identity{Source: SourceNone}, nil
	}

	id := uuid.New().String()
	if file != "" {
		if err := writeFile(file, id); err != nil {
			return Identity{Source: SourceNone}, err
		}
	}
	return Identity{UserID: id, Source: SourceGenerated}, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read user id: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func writeFile(path, id string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("persist user id: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("persist user id: %w", err)
	}
	return nil
}

// Forget removes a persisted user id. Missing files are not an error.
func Forget(file string) error {
	err := os.Remove(file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
