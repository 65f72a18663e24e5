package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestZerologWrapper_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologWrapper(&buf, "info")

	logger.ErrorWithFields(errors.New("boom"), "failed to generate illustration", map[string]interface{}{
		"section": 2,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "error" || entry["error"] != "boom" || entry["section"] != float64(2) {
		t.Fatalf("entry = %v", entry)
	}
	if entry["message"] != "failed to generate illustration" {
		t.Fatalf("message = %v", entry["message"])
	}
}

func TestZerologWrapper_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologWrapper(&buf, "warn")

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}

	logger.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("warn line was filtered")
	}
}

func TestZerologWrapper_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologWrapper(&buf, "loud")

	logger.Debug("hidden")
	logger.Info("shown")
	if bytes.Contains(buf.Bytes(), []byte("hidden")) || !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Fatalf("output = %q", buf.String())
	}
}
