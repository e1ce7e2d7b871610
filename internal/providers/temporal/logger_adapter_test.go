package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerAdapter(zap.New(core))

	l.Info("started", "WorkflowID", "wf-1", "Attempt", 2, "dangling")
	l.Error("failed", "Error", errors.New("boom"))

	scoped := l.(*ZapLoggerAdapter).With("TaskQueue", "enrichment")
	scoped.Warn("slow")

	entries := logs.All()
	assert.Len(t, entries, 3)

	assert.Equal(t, "started", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"WorkflowID": "wf-1", "Attempt": int64(2)}, entries[0].ContextMap())

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["Error"])

	assert.Equal(t, "enrichment", entries[2].ContextMap()["TaskQueue"])
}

func TestToFields_SkipsNonStringKeys(t *testing.T) {
	fields := toFields([]interface{}{1, "a", "key", "value"})
	assert.Len(t, fields, 1)
	assert.Equal(t, "key", fields[0].Key)
}
