package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildbot/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}
	output := <-done
	_ = r.Close()
	return output
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		// The logger must be created inside so it picks up the redirected stderr.
		lg := logger.New()
		lg.Info("configuring linux-x86_64-release")
	})

	if !strings.Contains(output, "configuring linux-x86_64-release") {
		t.Errorf("Expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("running compile(all)")
	lg.Warn("option --jobs will be reset to 1")
	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "running compile(all)")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "permission denied")
}
