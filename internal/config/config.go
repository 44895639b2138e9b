package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SchemeMemory keeps records in process memory
	SchemeMemory = "memory"
	// SchemeBolt persists records to a BoltDB file
	SchemeBolt = "bolt"
)

const (
	// DefaultDatabaseURL is the connection string used when none is configured
	DefaultDatabaseURL = SchemeMemory + "://"
	// DefaultMaxConnections is the sample connection limit
	DefaultMaxConnections = 100
)

// Settings is the configuration mapping for recordctl
type Settings struct {
	// DatabaseURL selects the record store, e.g. memory:// or bolt://records.db
	DatabaseURL string `yaml:"database_url" json:"database_url" mapstructure:"database_url"`
	// Debug raises the log level to debug
	Debug bool `yaml:"debug" json:"debug" mapstructure:"debug"`
	// MaxConnections is declared for completeness; nothing enforces it
	MaxConnections int `yaml:"max_connections" json:"max_connections" mapstructure:"max_connections"`
}

// Default returns the sample settings
func Default() *Settings {
	return &Settings{
		DatabaseURL:    DefaultDatabaseURL,
		Debug:          false,
		MaxConnections: DefaultMaxConnections,
	}
}

// SetDefaults registers the default settings on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("database_url", d.DatabaseURL)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("max_connections", d.MaxConnections)
}

// Load reads settings from v, falling back to the defaults for unset keys
func Load(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFromFile loads settings from a YAML file. Keys missing from the file
// keep their default values.
func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks if the settings are usable
func (s *Settings) Validate() error {
	if s.MaxConnections <= 0 {
		return fmt.Errorf("max_connections must be positive, got %d", s.MaxConnections)
	}
	if _, _, err := s.StoragePath(); err != nil {
		return err
	}
	return nil
}

// StoragePath splits DatabaseURL into its scheme and path
func (s *Settings) StoragePath() (scheme, path string, err error) {
	if s.DatabaseURL == "" {
		return "", "", fmt.Errorf("database_url is required")
	}

	scheme, path, ok := strings.Cut(s.DatabaseURL, "://")
	if !ok {
		return "", "", fmt.Errorf("database_url %q has no scheme", s.DatabaseURL)
	}

	switch scheme {
	case SchemeMemory:
		return scheme, "", nil
	case SchemeBolt:
		if path == "" {
			return "", "", fmt.Errorf("database_url %q has no file path", s.DatabaseURL)
		}
		return scheme, path, nil
	default:
		return "", "", fmt.Errorf("unsupported database_url scheme %q", scheme)
	}
}

// LogLevel returns "debug" when Debug is set, otherwise fallback
func (s *Settings) LogLevel(fallback string) string {
	if s.Debug {
		return "debug"
	}
	return fallback
}
