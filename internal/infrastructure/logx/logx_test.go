package logx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := SetLogger(zap.New(core))
	defer restore()

	ctx := WithTraceID(WithRequestID(context.Background(), "rid-1"), "tid-1")
	WithFields(ctx).Info("hello")
	WithFields(context.Background()).Info("bare")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	require.Equal(t, "rid-1", fields["request_id"])
	require.Equal(t, "tid-1", fields["trace_id"])
	require.Empty(t, entries[1].ContextMap())
}

func TestContextIDs(t *testing.T) {
	ctx := WithRequestID(context.Background(), "r")
	require.Equal(t, "r", RequestID(ctx))
	require.Empty(t, TraceID(ctx))
}
