package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "noticias.log")

	if err := Init(Config{Level: "debug", Output: path}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	log := Component("feed")
	log.Info().Str("category", "sanjuan").Msg("fetched")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"component":"feed"`, `"category":"sanjuan"`, `"message":"fetched"`} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected log line to contain %s, got %s", want, line)
		}
	}

	// Later calls keep the first configuration
	if err := Init(Config{Output: "stderr"}); err != nil {
		t.Errorf("Expected repeated Init to be a no-op, got %v", err)
	}
	if Get() == nil {
		t.Errorf("Expected a logger instance")
	}
}
