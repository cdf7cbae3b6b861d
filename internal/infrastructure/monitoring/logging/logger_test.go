package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_DefaultsApply(t *testing.T) {
	l, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestNewLogger_InvalidOutputPath(t *testing.T) {
	_, err := NewLogger(LogConfig{OutputPaths: []string{"scheme://nope"}})
	assert.Error(t, err)
}

func TestZapLogger_FieldsArriveTyped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	l.Info("aggregated",
		String("window", "30d"),
		Int("signals", 6),
		Float64("lat", -2.88),
		Bool("demo", false),
		Duration("took", 25*time.Millisecond),
		Err(errors.New("partial")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "aggregated", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "30d", fields["window"])
	assert.Equal(t, int64(6), fields["signals"])
	assert.Equal(t, false, fields["demo"])
	assert.Equal(t, "partial", fields["error"])
}

func TestWith_DoesNotMutateParent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := NewLoggerFromCore(core)
	child := parent.With(String("component", "aggregator"))

	parent.Info("from parent")
	child.Info("from child")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0].ContextMap(), "component")
	assert.Equal(t, "aggregator", entries[1].ContextMap()["component"])
}

func TestErr_NilError(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestDefault_SetAndGet(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	nop := NewNopLogger()
	SetDefault(nop)
	assert.Equal(t, nop, Default())

	// nil must be ignored
	SetDefault(nil)
	assert.Equal(t, nop, Default())
}

//Personal.AI order the ending
