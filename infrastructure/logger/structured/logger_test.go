package structured

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: Options{}},
		{name: "json debug", opts: Options{Level: "debug", Format: "json"}},
		{name: "file output", opts: Options{Level: "warn", File: filepath.Join(t.TempDir(), "app.log")}},
		{name: "bad level", opts: Options{Level: "loud"}, wantErr: true},
		{name: "bad format", opts: Options{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("NewLogger returned nil")
			}
		})
	}
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "info")
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}

	logger.Info("Fetched feed", map[string]interface{}{
		"url":   "https://www.espn.com/espn/rss/soccer/news",
		"bytes": 1024,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "Fetched feed" {
		t.Errorf("msg = %v, want Fetched feed", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["url"] != "https://www.espn.com/espn/rss/soccer/news" {
		t.Errorf("url field = %v", entry["url"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "warn")
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", nil)
	logger.Warn("visible warn", map[string]interface{}{"error": "boom"})
	logger.Error("visible error", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %s", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("expected warn and error lines, got: %s", out)
	}
}

func TestLogger_NilFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewWithWriter(&buf, "debug")

	logger.Debug("no fields", nil)

	if !strings.Contains(buf.String(), "no fields") {
		t.Errorf("expected message in output, got: %s", buf.String())
	}
}
