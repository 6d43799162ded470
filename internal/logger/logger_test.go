package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	lvl, err = parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestReplace_RoutesGlobalHelpers(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Replace(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))

	Info("bean created", zap.Uint("bean_id", 7))
	Error("write failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "bean created", entries[0].Message)
	assert.Equal(t, uint64(7), entries[0].ContextMap()["bean_id"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
