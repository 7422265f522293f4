package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level keepbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Admin    AdminConfig    `yaml:"admin"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig holds the cookie-signing secret.
type SessionConfig struct {
	Secret string `yaml:"secret"`
}

// AdminConfig holds the bootstrap admin credentials, used only when the
// users table is empty at startup.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads a keepbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger,
// including a freshly generated session secret.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "USD",
		},
		Server: ServerConfig{
			Listen: "127.0.0.1:8080",
		},
		Database: DatabaseConfig{
			Path: "ledger.db",
		},
		Session: SessionConfig{
			Secret: newSecret(),
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "change-me",
		},
	}
}

func newSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("generating session secret: %v", err))
	}
	return hex.EncodeToString(buf)
}
