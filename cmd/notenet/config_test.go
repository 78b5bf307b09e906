package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfiguration(t *testing.T) {
	dir, err := os.MkdirTemp("", "notenet-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Setenv("NOTENET_API_URL", "")
	t.Setenv("NOTENET_STORE", "")

	tomlPath := writeConfig(t, dir, "config.dev.toml", `
[api]
url = "https://notes.example.com/api"
timeout = "3s"

[storage]
path = "/tmp/notenet.db"
`)
	yamlPath := writeConfig(t, dir, "config.dev.yaml", `
api:
  url: https://yaml.example.com/api
log:
  env: prod
`)
	badTimeout := writeConfig(t, dir, "bad.toml", `
[api]
timeout = "soon"
`)

	tts := []struct {
		name    string
		path    string
		url     string
		store   string
		env     string
		invalid bool
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.toml"), url: defaultAPIURL, store: defaultConfiguration().Storage.Path},
		{name: "toml", path: tomlPath, url: "https://notes.example.com/api", store: "/tmp/notenet.db"},
		{name: "yaml", path: yamlPath, url: "https://yaml.example.com/api", store: defaultConfiguration().Storage.Path, env: "prod"},
		{name: "bad timeout", path: badTimeout, invalid: true},
	}

	for _, tt := range tts {
		cfg, err := loadConfiguration(tt.path)
		if tt.invalid {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.url, cfg.API.URL, tt.name)
		assert.Equal(t, tt.store, cfg.Storage.Path, tt.name)
		assert.Equal(t, tt.env, cfg.Log.Env, tt.name)
	}
}

func TestLoadConfiguration_Environment(t *testing.T) {
	t.Setenv("NOTENET_API_URL", "http://env.example.com/api")
	t.Setenv("NOTENET_STORE", "/tmp/env.db")

	cfg, err := loadConfiguration(filepath.Join(os.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/api", cfg.API.URL)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)

	timeout, err := cfg.timeout()
	require.NoError(t, err)
	assert.Equal(t, "10s", timeout.String())
}
