package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bobinette/notenet/errors"
)

const defaultAPIURL = "http://localhost:5000/api"

type Configuration struct {
	API struct {
		URL     string `toml:"url" yaml:"url"`
		Timeout string `toml:"timeout" yaml:"timeout"`
	} `toml:"api" yaml:"api"`
	Storage struct {
		Path string `toml:"path" yaml:"path"`
	} `toml:"storage" yaml:"storage"`
	Log struct {
		Env string `toml:"env" yaml:"env"`
	} `toml:"log" yaml:"log"`
}

func defaultConfiguration() Configuration {
	var cfg Configuration
	cfg.API.URL = defaultAPIURL
	cfg.API.Timeout = "10s"
	cfg.Storage.Path = filepath.Join("data", "session.db")
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Storage.Path = filepath.Join(home, ".notenet", "session.db")
	}
	return cfg
}

// loadConfiguration reads the file at path on top of the defaults, then
// applies the environment. A missing file is not an error.
func loadConfiguration(path string) (Configuration, error) {
	cfg := defaultConfiguration()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshalConfiguration(path, data, &cfg); err != nil {
			return Configuration{}, errors.New("error unmarshalling configuration", errors.WithCause(err))
		}
	case !os.IsNotExist(err):
		return Configuration{}, errors.New("could not read configuration file", errors.WithCause(err))
	}

	// .env is optional, and never overrides the real environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Configuration{}, errors.New("could not read .env", errors.WithCause(err))
	}

	if url := os.Getenv("NOTENET_API_URL"); url != "" {
		cfg.API.URL = url
	}
	if store := os.Getenv("NOTENET_STORE"); store != "" {
		cfg.Storage.Path = store
	}

	if _, err := cfg.timeout(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func unmarshalConfiguration(path string, data []byte, cfg *Configuration) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	}
	return toml.Unmarshal(data, cfg)
}

func (cfg Configuration) timeout() (time.Duration, error) {
	if cfg.API.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(cfg.API.Timeout)
	if err != nil {
		return 0, errors.New(fmt.Sprintf("invalid api timeout %q", cfg.API.Timeout), errors.WithCause(err))
	}
	return d, nil
}
