package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultEnvironment is the environment used when none is named anywhere.
const DefaultEnvironment = "default"

// Environment is one saved deployment environment: where the platform API
// lives and the token to talk to it.
type Environment struct {
	URL         string `yaml:"url"`
	Token       string `yaml:"token,omitempty"`
	TokenExpiry string `yaml:"token_expiry,omitempty"` // RFC3339
}

// Config is the on-disk configuration (~/.config/cloud/config.yaml).
type Config struct {
	CurrentEnvironment string                  `yaml:"current_environment,omitempty"`
	Environments       map[string]*Environment `yaml:"environments,omitempty"`
}

// Dir returns the config directory path (~/.config/cloud).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cloud"
	}
	return filepath.Join(home, ".config", "cloud")
}

// Path returns the config file path (~/.config/cloud/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file, returning an empty usable config when the
// file does not exist yet.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Environments: make(map[string]*Environment)}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Environments == nil {
		cfg.Environments = make(map[string]*Environment)
	}

	return &cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600 — the file holds access tokens.
	if err := os.WriteFile(Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetEnvironment resolves a named environment. An empty name falls back to
// the current environment, then to DefaultEnvironment.
func GetEnvironment(name string) (*Environment, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	if name == "" {
		name = cfg.CurrentEnvironment
	}
	if name == "" {
		name = DefaultEnvironment
	}

	env, ok := cfg.Environments[name]
	if !ok {
		return nil, name, fmt.Errorf("environment %q not found", name)
	}

	return env, name, nil
}

// SetEnvironment adds or updates an environment.
func SetEnvironment(name string, env *Environment) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.Environments[name] = env
	if cfg.CurrentEnvironment == "" {
		cfg.CurrentEnvironment = name
	}
	return Save(cfg)
}

// SetCurrentEnvironment switches the active environment.
func SetCurrentEnvironment(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Environments[name]; !ok {
		return fmt.Errorf("environment %q not found", name)
	}

	cfg.CurrentEnvironment = name
	return Save(cfg)
}

// DeleteEnvironment removes an environment, clearing the current pointer if
// it referenced the deleted one.
func DeleteEnvironment(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Environments[name]; !ok {
		return fmt.Errorf("environment %q not found", name)
	}

	delete(cfg.Environments, name)
	if cfg.CurrentEnvironment == name {
		cfg.CurrentEnvironment = ""
	}
	return Save(cfg)
}

// ListEnvironments returns all environments plus the current environment
// name.
func ListEnvironments() (map[string]*Environment, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}
	return cfg.Environments, cfg.CurrentEnvironment, nil
}

// SortedNames returns environment names in lexical order.
func SortedNames(envs map[string]*Environment) []string {
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
