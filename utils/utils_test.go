package utils

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

// swapLoggers points both loggers at a buffer and restores them after.
func swapLoggers(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	origInfo, origError := InfoLogger, ErrorLogger
	InfoLogger = log.New(buf, "INFO: ", 0)
	ErrorLogger = log.New(buf, "ERROR: ", 0)
	t.Cleanup(func() {
		InfoLogger, ErrorLogger = origInfo, origError
	})
	return buf
}

func TestLogInfo(t *testing.T) {
	t.Run("writes message", func(t *testing.T) {
		buf := swapLoggers(t)
		LogInfo("launcher ready")
		assert.Contains(t, buf.String(), "INFO: launcher ready")
	})

	t.Run("appends metadata", func(t *testing.T) {
		buf := swapLoggers(t)
		LogInfo("handing off", "target", "/usr/bin/python3")
		assert.Contains(t, buf.String(), "handing off")
		assert.Contains(t, buf.String(), "target")
		assert.Contains(t, buf.String(), "/usr/bin/python3")
	})
}

func TestLogError(t *testing.T) {
	t.Run("writes context and error", func(t *testing.T) {
		buf := swapLoggers(t)
		LogError("handoff failed", errors.New("no such file"))
		assert.Contains(t, buf.String(), "ERROR: handoff failed")
		assert.Contains(t, buf.String(), "no such file")
	})

	t.Run("ignores nil error", func(t *testing.T) {
		buf := swapLoggers(t)
		LogError("handoff failed", nil)
		assert.Empty(t, buf.String())
	})
}
