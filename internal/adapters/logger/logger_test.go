package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func capture(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := capture(t)

	lg.Info("scan complete")

	require.Contains(t, buf.String(), "scan complete")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := capture(t)

	lg.Warn("watcher already running")

	require.Contains(t, buf.String(), "watcher already running")
}

func TestLogger_Error_PlainError(t *testing.T) {
	lg, buf := capture(t)

	lg.Error(errors.New("permission denied"))

	require.Contains(t, buf.String(), "permission denied")
}

func TestLogger_Error_WrappedChain(t *testing.T) {
	lg, buf := capture(t)

	cause := errors.New("no such file or directory")
	err := zerr.Wrap(cause, "failed to load library index")
	lg.Error(err)

	out := buf.String()
	require.Contains(t, out, "Error: failed to load library index")
	require.Contains(t, out, "Caused by:")
	require.Contains(t, out, "no such file or directory")

	// The root message comes before its cause.
	require.Less(t,
		strings.Index(out, "failed to load library index"),
		strings.Index(out, "no such file or directory"))
}

func TestLogger_Error_NilIsNoop(t *testing.T) {
	lg, buf := capture(t)

	lg.Error(nil)

	require.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := capture(t)
	lg.SetJSON(true)

	lg.Info("indexed collection")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "indexed collection", entry["msg"])
	require.Equal(t, "INFO", entry["level"])
}

func TestLogger_JSONMode_Error(t *testing.T) {
	lg, buf := capture(t)
	lg.SetJSON(true)

	lg.Error(zerr.New("flush failed"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "operation failed", entry["msg"])
	require.Contains(t, entry["error"], "flush failed")
}
