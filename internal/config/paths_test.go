package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsFromEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("PLAYGROUND_HOME", base)

	p, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, base, p.Base)
	assert.Equal(t, filepath.Join(base, "config.yaml"), p.Config)
	assert.Equal(t, filepath.Join(base, "user_id"), p.UserID)
}

func TestResolvePathsDefaultHome(t *testing.T) {
	t.Setenv("PLAYGROUND_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	p, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".playground"), p.Base)
}

func TestEnsureDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", ".playground")
	p := Paths{Base: base}
	require.NoError(t, p.EnsureDirs())

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestParseConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single segment", "endpoint", []string{"endpoint"}, false},
		{"two segments", "identity.userId", []string{"identity", "userId"}, false},
		{"empty", "", nil, true},
		{"empty segment", "identity..userId", nil, true},
		{"leading dot", ".identity", nil, true},
		{"trailing dot", "identity.", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigPath(tt.input)
			if tt.wantErr {
				var ce *ConfigError
				assert.ErrorAs(t, err, &ce)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetValueAtPath(t *testing.T) {
	root := map[string]any{
		"identity": map[string]any{"userId": "u-1"},
		"endpoint": "http://x",
	}

	v, ok := GetValueAtPath(root, []string{"identity", "userId"})
	assert.True(t, ok)
	assert.Equal(t, "u-1", v)

	_, ok = GetValueAtPath(root, []string{"endpoint", "nested"})
	assert.False(t, ok)

	_, ok = GetValueAtPath(root, []string{"missing"})
	assert.False(t, ok)
}

func TestSetValueAtPathReplacesScalar(t *testing.T) {
	root := map[string]any{"routes": "flat"}
	SetValueAtPath(root, []string{"routes", "prefix"}, "/v2")

	v, ok := GetValueAtPath(root, []string{"routes", "prefix"})
	assert.True(t, ok)
	assert.Equal(t, "/v2", v)
}

func TestUnsetValueAtPath(t *testing.T) {
	root := map[string]any{
		"identity": map[string]any{"userId": "u-1", "generate": true},
	}

	assert.True(t, UnsetValueAtPath(root, []string{"identity", "userId"}))
	assert.False(t, UnsetValueAtPath(root, []string{"identity", "userId"}))
	assert.False(t, UnsetValueAtPath(root, []string{"nope", "x"}))

	_, ok := GetValueAtPath(root, []string{"identity", "generate"})
	assert.True(t, ok)
}
