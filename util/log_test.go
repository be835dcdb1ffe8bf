package util

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerModes(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&LoggerInfo{Mode: Error | Info}, &buf)

	l.LogError(fmt.Errorf("broken"))
	l.LogWarning("ignored")
	l.LogInfo("hello")
	l.LogInfof("listening at %s", "127.0.0.1:8080")

	out := buf.String()
	if !strings.Contains(out, "[ERROR] broken") || !strings.Contains(out, "[INFO] hello") ||
		!strings.Contains(out, "[INFO] listening at 127.0.0.1:8080") {
		t.Errorf("missing lines in %q", out)
	}
	if strings.Contains(out, "ignored") {
		t.Errorf("warnings are disabled, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("writer logger must not colorize: %q", out)
	}
}

func TestLoggerFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "log.log")
	l := NewLogger(&LoggerInfo{Filename: filename, Mode: Warning, IsColored: true})
	l.LogWarning("first")
	l.LogWarning("second")

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", data)
	}
	if !strings.HasPrefix(lines[0], YellowColor+"[WARNING]"+ResetColor) {
		t.Errorf("expected a colored tag, got %q", lines[0])
	}
}

func TestPickAtRandom(t *testing.T) {
	items := []string{"a", "b", "c"}
	item, rest := PickAtRandom(items)
	if len(rest) != 2 || len(items) != 3 {
		t.Fatalf("unexpected sizes: %v %v", rest, items)
	}
	for _, r := range rest {
		if r == item {
			t.Errorf("%q must not be in %v", item, rest)
		}
	}
	if item, _ := PickAtRandom(nil); item != "" {
		t.Errorf("nothing to pick from, got %q", item)
	}
}

func TestFixUnicode(t *testing.T) {
	if FixUnicode("e\u0301") != "\u00e9" {
		t.Errorf("expected NFC composition")
	}
}
