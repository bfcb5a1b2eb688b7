package loggers_test

import (
	"errors"
	"testing"

	"github.com/spiceai/jaxr/pkg/jaxr"
	"github.com/spiceai/jaxr/pkg/loggers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	logger := loggers.ZapLogger()
	require.NotNil(t, logger)
	assert.Same(t, logger, loggers.ZapLogger())
	loggers.ZapLoggerSync()
}

func TestLogException(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	loggers.LogException(logger, "lookup failed", jaxr.FromCause(errors.New("timeout")))
	loggers.LogException(logger, "dial failed", errors.New("refused"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	exception, ok := entries[0].ContextMap()["exception"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "timeout", exception["message"])

	assert.Equal(t, "refused", entries[1].ContextMap()["error"])
}
