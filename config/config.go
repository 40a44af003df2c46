package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the backend origin used when nothing else is configured.
	DefaultAPIURL = "http://localhost:8080"

	// APIURLEnvVar names the environment variable holding the backend origin.
	APIURLEnvVar = "DEPOCHECK_API_URL"

	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"

	defaultAddress  = ":3000"
	defaultLifetime = 24 * time.Hour
)

// Config is the top-level configuration for depocheck.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig holds the settings of the web dashboard.
type ServerConfig struct {
	Address      string `yaml:"address"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

// BackendConfig describes how to reach the dependency-scanning API.
type BackendConfig struct {
	URL           string            `yaml:"url"`            // Inline or ${ENV_VAR}
	Timeout       time.Duration     `yaml:"timeout"`        // Zero means no timeout
	HostOverrides map[string]string `yaml:"host_overrides"` // Dashboard hostname -> API origin
}

// SessionConfig selects and configures the durable session store.
type SessionConfig struct {
	Store         string        `yaml:"store"` // "memory", "redis", "postgres"
	Lifetime      time.Duration `yaml:"lifetime"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"` // Inline, ${ENV_VAR}, or file path
	PostgresDSN   string        `yaml:"postgres_dsn"`   // Inline, ${ENV_VAR}, or file path
	FilePath      string        `yaml:"file_path"`      // Terminal client session file
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a configuration file, expanding environment variables
// and resolving secret file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Backend.URL = resolveSecret(cfg.Backend.URL)
	cfg.Session.RedisPassword = resolveSecret(cfg.Session.RedisPassword)
	cfg.Session.PostgresDSN = resolveSecret(cfg.Session.PostgresDSN)

	applyDefaults(&cfg)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// LoadOrDefault loads the file at path, or the first file found in the
// standard locations when path is empty. Without any file the defaults apply.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return Default(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return Load(found)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depocheck.yaml",
		".depocheck.yml",
		"depocheck.yaml",
		"depocheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveURL returns the backend origin for a dashboard served under host.
// The order is: host override, configured URL, environment, local default.
func (it BackendConfig) ResolveURL(host string) string {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}
	if override, ok := it.HostOverrides[strings.ToLower(hostname)]; ok && override != "" {
		return strings.TrimSuffix(override, "/")
	}
	if it.URL != "" {
		return strings.TrimSuffix(it.URL, "/")
	}
	if env := os.Getenv(APIURLEnvVar); env != "" {
		return strings.TrimSuffix(env, "/")
	}
	return DefaultAPIURL
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the value from the file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the secret from it
	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaultAddress
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = StoreMemory
	}
	if cfg.Session.Lifetime == 0 {
		cfg.Session.Lifetime = defaultLifetime
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = defaultSessionFile()
	}
	if cfg.Backend.HostOverrides == nil {
		cfg.Backend.HostOverrides = map[string]string{
			"depocheck.djapamal.fr": "https://api.depocheck.djapamal.fr",
		}
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".depocheck", "session.yaml")
	}
	return filepath.Join(dir, "depocheck", "session.yaml")
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.Backend.Timeout < 0 {
		return errors.New("backend.timeout must not be negative")
	}
	if cfg.Session.Lifetime < 0 {
		return errors.New("session.lifetime must not be negative")
	}

	for host, origin := range cfg.Backend.HostOverrides {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("backend.host_overrides[%q] must be an http(s) origin", host)
		}
	}

	switch cfg.Session.Store {
	case StoreMemory:
	case StoreRedis:
		if cfg.Session.RedisAddr == "" {
			return errors.New("session.redis_addr is required when session.store is \"redis\"")
		}
	case StorePostgres:
		if cfg.Session.PostgresDSN == "" {
			return errors.New(
				"session.postgres_dsn is required when session.store is \"postgres\" (set inline, via ${ENV_VAR}, or as file path)",
			)
		}
	default:
		return fmt.Errorf("session.store %q is not one of memory, redis, postgres", cfg.Session.Store)
	}

	return nil
}
