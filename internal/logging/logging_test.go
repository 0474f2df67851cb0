package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
)

func TestInitializeWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(Config{Level: "debug", Format: "json"}, &buf)
	defer InitializeDefault()

	Named("orchestrator").Info("fallback used", zap.String("option", "Lambda"))
	Sync()

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["logger"] != "orchestrator" {
		t.Errorf("expected logger name 'orchestrator', got %v", entry["logger"])
	}
	if entry["option"] != "Lambda" {
		t.Errorf("expected option field 'Lambda', got %v", entry["option"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp key")
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(Config{Level: "chatty", Format: "json"}, &buf)
	defer InitializeDefault()

	Debug("hidden")
	Info("shown")
	Sync()

	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Error("debug line should be filtered at info level")
	}
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Error("info line should be written")
	}
}
