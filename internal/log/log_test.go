package log_test

import (
	"testing"

	"github.com/on-the-ground/memoize/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestEmit_Levels(t *testing.T) {
	logger, logs := log.NewTestLogger()

	log.Emit(logger, log.LogPayload{Level: log.LogDebug, Message: "d"})
	log.Emit(logger, log.LogPayload{Level: log.LogInfo, Message: "i"})
	log.Emit(logger, log.LogPayload{Level: log.LogWarn, Message: "w", Fields: map[string]interface{}{"count": 2}})
	log.Emit(logger, log.LogPayload{Level: log.LogError, Message: "e"})
	log.Emit(logger, log.LogPayload{Level: "bogus", Message: "fallback"})

	entries := logs.All()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(2), entries[2].ContextMap()["count"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
	assert.Equal(t, "fallback", entries[4].Message)
}

func TestParseLevel(t *testing.T) {
	lvl, err := log.ParseLevel("")
	assert.NoError(t, err)
	assert.Equal(t, log.LogWarn, lvl)

	lvl, err = log.ParseLevel(" ERROR ")
	assert.NoError(t, err)
	assert.Equal(t, log.LogError, lvl)

	_, err = log.ParseLevel("loud")
	assert.ErrorIs(t, err, log.ErrUnknownLevel)
}

func TestDefault_IsShared(t *testing.T) {
	first := log.Default()
	assert.NotNil(t, first)
	assert.Same(t, first, log.Default())
}
