package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "info", expected: zapcore.InfoLevel},
		{input: "warn", expected: zapcore.WarnLevel},
		{input: "error", expected: zapcore.ErrorLevel},
		{input: "verbose", expected: zapcore.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestInitWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter("warn", &buf); err != nil {
		t.Fatalf("InitWithWriter() error = %v", err)
	}
	t.Cleanup(func() { log = nil })
	if Level() != zapcore.WarnLevel {
		t.Errorf("Level() = %v, want %v", Level(), zapcore.WarnLevel)
	}

	Info("hidden message")
	Warn("visible message", zap.String("key", "value"))
	_ = Sync()

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "value") {
		t.Errorf("warn entry missing from output: %q", out)
	}
}

func TestNamed_BeforeInit(t *testing.T) {
	log = nil
	if Named("storage") == nil {
		t.Fatal("Named() returned nil before Init")
	}
	// must not panic
	Debug("no logger yet")
	if err := Sync(); err != nil {
		t.Errorf("Sync() before Init = %v, want nil", err)
	}
}

func TestInitWithWriter_InvalidLevel(t *testing.T) {
	if err := InitWithWriter("loud", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
