package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-secure-hash/internal/config"
	"github.com/hasbyte1/go-secure-hash/internal/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(config.LogConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	l.Debug("details")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "details")
}

func TestNew_Invalid(t *testing.T) {
	_, err := logger.New(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logger.New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
