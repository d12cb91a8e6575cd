package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	mdwlog "github.com/msto63/termio/foundation/core/log"
	"github.com/msto63/termio/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("termio")
	if cfg.Name != "termio" || cfg.Level != "info" || cfg.Format != "text" || cfg.Output != OutputDiscard {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig("termio", config.LoggingConfig{Level: "warn", Format: "json", Output: "stderr"}, true)
	if cfg.Level != "warn" || cfg.Format != "json" || cfg.Output != "stderr" || !cfg.Verbose {
		t.Errorf("FromConfig() = %+v", cfg)
	}
}

func TestNewLogger_Discard(t *testing.T) {
	var stderr bytes.Buffer
	logger, closer, err := NewLogger(LoggerConfig{Name: "t", Level: "debug", Stderr: &stderr})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer closer.Close()

	logger.Info("nothing")
	if stderr.Len() != 0 {
		t.Errorf("discard logger wrote %q", stderr.String())
	}
}

func TestNewLogger_Verbose(t *testing.T) {
	var stderr bytes.Buffer
	logger, closer, err := NewLogger(LoggerConfig{
		Name:      "t",
		Level:     "error",
		Format:    "json",
		Verbose:   true,
		Stderr:    &stderr,
		SessionID: "session-1",
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer closer.Close()

	if !logger.IsLevelEnabled(mdwlog.LevelDebug) {
		t.Error("verbose should enable debug level")
	}

	logger.Debug("attempt rejected")
	out := stderr.String()
	if !strings.Contains(out, "[DBG] {t} attempt rejected") {
		t.Errorf("verbose output = %q", out)
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termio.log")
	logger, closer, err := NewLogger(LoggerConfig{Name: "t", Format: "json", Output: path, SessionID: "abc"})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"correlation_id":"abc"`) {
		t.Errorf("log file = %s", data)
	}
}

func TestNewLogger_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
		code mdwerror.Code
	}{
		{"bad level", LoggerConfig{Level: "loud"}, mdwerror.CodeInvalidConfig},
		{"bad format", LoggerConfig{Format: "xml"}, mdwerror.CodeInvalidConfig},
		{"stdout", LoggerConfig{Output: "stdout"}, mdwerror.CodeInvalidConfig},
		{"unwritable file", LoggerConfig{Output: filepath.Join(t.TempDir(), "missing", "x.log")}, mdwerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewLogger(tt.cfg)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewSessionID() = %q is not a UUID: %v", id, err)
	}
	if id == NewSessionID() {
		t.Error("session ids should differ")
	}
}
