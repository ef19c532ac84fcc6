// Package config loads CLI/server configuration the way the teacher's
// cmd/server and cmd/crossgen do: a YAML file named by --config,
// overridden by environment variables loaded from .env, validated
// against struct tags before anything else in the process touches it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the CLI and HTTP adapter need.
type Config struct {
	DictPath  string `yaml:"dict_path" validate:"required"`
	StorePath string `yaml:"store_path" validate:"required"`
	HTTPAddr  string `yaml:"http_addr" validate:"required"`
	Verbosity int    `yaml:"verbosity" validate:"gte=0,lte=2"`
}

// Default returns the settings used when neither a config file nor
// environment overrides are present.
func Default() Config {
	return Config{
		DictPath:  "./dictionary.txt",
		StorePath: "./xword-slots.db",
		HTTPAddr:  ":8080",
		Verbosity: 0,
	}
}

// Load builds a Config starting from Default, applying path's YAML
// contents if path is non-empty, then applying environment variable
// overrides (XWORD_DICT_PATH, XWORD_STORE_PATH, XWORD_HTTP_ADDR,
// XWORD_VERBOSITY), exactly as cmd/server/main.go layers env vars over
// defaults. A missing .env file is not an error, same as there.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "config: no .env file found, using environment variables")
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("XWORD_DICT_PATH"); v != "" {
		cfg.DictPath = v
	}
	if v := os.Getenv("XWORD_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("XWORD_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("XWORD_VERBOSITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Verbosity = n
		}
	}
}
