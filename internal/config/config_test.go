package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recordctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.DatabaseURL != "memory://" {
		t.Errorf("DatabaseURL = %q, want memory://", s.DatabaseURL)
	}
	if s.Debug {
		t.Error("Debug = true, want false")
	}
	if s.MaxConnections != 100 {
		t.Errorf("MaxConnections = %d, want 100", s.MaxConnections)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "database_url: bolt:///tmp/records.db\ndebug: true\n")

	s, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if s.DatabaseURL != "bolt:///tmp/records.db" {
		t.Errorf("DatabaseURL = %q", s.DatabaseURL)
	}
	if !s.Debug {
		t.Error("Debug = false, want true")
	}
	if s.MaxConnections != DefaultMaxConnections {
		t.Errorf("MaxConnections = %d, want default %d", s.MaxConnections, DefaultMaxConnections)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFromFile(writeConfig(t, "debug: [not, a, bool\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := LoadFromFile(writeConfig(t, "max_connections: 0\n")); err == nil {
		t.Error("expected validation error for zero max_connections")
	}
}

func TestLoad_Viper(t *testing.T) {
	v := viper.New()
	v.Set("max_connections", 5)

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.MaxConnections != 5 {
		t.Errorf("MaxConnections = %d, want 5", s.MaxConnections)
	}
	if s.DatabaseURL != DefaultDatabaseURL {
		t.Errorf("DatabaseURL = %q, want %q", s.DatabaseURL, DefaultDatabaseURL)
	}
}

func TestStoragePath(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantScheme string
		wantPath   string
		wantErr    bool
	}{
		{name: "memory", url: "memory://", wantScheme: "memory"},
		{name: "bolt", url: "bolt://data/records.db", wantScheme: "bolt", wantPath: "data/records.db"},
		{name: "bolt absolute", url: "bolt:///var/lib/records.db", wantScheme: "bolt", wantPath: "/var/lib/records.db"},
		{name: "bolt without path", url: "bolt://", wantErr: true},
		{name: "no scheme", url: "records.db", wantErr: true},
		{name: "unsupported", url: "postgres://localhost:5432/db", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{DatabaseURL: tt.url, MaxConnections: 1}
			scheme, path, err := s.StoragePath()
			if (err != nil) != tt.wantErr {
				t.Fatalf("StoragePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if scheme != tt.wantScheme || path != tt.wantPath {
				t.Errorf("StoragePath() = (%q, %q), want (%q, %q)", scheme, path, tt.wantScheme, tt.wantPath)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	s := Default()
	if got := s.LogLevel("warn"); got != "warn" {
		t.Errorf("LogLevel() = %q, want warn", got)
	}
	s.Debug = true
	if got := s.LogLevel("warn"); got != "debug" {
		t.Errorf("LogLevel() = %q, want debug", got)
	}
}
