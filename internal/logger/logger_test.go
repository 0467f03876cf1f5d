package logger

import (
	"bytes"
	"encoding/json"
	"github.com/p7r0x7/foldhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(DefaultConfig(), zapcore.AddSync(&buf))
	require.NoError(t, err)
	log.Debug("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log, err = New(Config{Debug: true, Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)
	log.Debugw("visible", "k", 1)
	require.NoError(t, log.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, float64(1), entry["k"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestTracer(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := foldhash.NewHasher(foldhash.WithTracer(Tracer{Log: zap.New(core).Sugar()}))
	v, err := h.SumString("hellothere")
	require.NoError(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 5) /* 1 encoded, 2 blocks, 2 folds */
	assert.Equal(t, "encoded", entries[0].Message)
	assert.Equal(t, "492997048111887106273893", entries[0].ContextMap()["decimal"])
	assert.Equal(t, "block", entries[1].Message)
	assert.Equal(t, "folded", entries[4].Message)
	assert.Equal(t, v, entries[4].ContextMap()["running"])
}
