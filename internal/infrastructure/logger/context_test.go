package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestWithContext_FromContext(t *testing.T) {
	t.Run("retrieves stored logger", func(t *testing.T) {
		logger := zap.NewNop()
		ctx := WithContext(context.Background(), logger)

		got := FromContext(ctx)
		assert.Same(t, logger, got)
	})

	t.Run("returns noop logger when absent", func(t *testing.T) {
		got := FromContext(context.Background())
		require.NotNil(t, got)
	})
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestWithRestaurantID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRestaurantID(context.Background(), logger, "rest-42")

	assert.Equal(t, "rest-42", GetRestaurantID(ctx))

	enriched.Info("hello")
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rest-42", entries[0].ContextMap()["restaurant_id"])
}

func TestWithUserID(t *testing.T) {
	ctx, _ := WithUserID(context.Background(), zap.NewNop(), "user-7")
	assert.Equal(t, "user-7", GetUserID(ctx))
}

func TestGetters_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetRestaurantID(ctx))
	assert.Empty(t, GetUserID(ctx))
}

func TestContextLogger(t *testing.T) {
	t.Run("injects context fields into entries", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := zap.New(core)

		ctx := WithContext(context.Background(), logger)
		ctx = context.WithValue(ctx, RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, RestaurantIDKey, "rest-1")
		ctx = context.WithValue(ctx, UserIDKey, "user-1")

		L(ctx).Info("processing")

		entries := logs.All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "rest-1", fields["restaurant_id"])
		assert.Equal(t, "user-1", fields["user_id"])
	})

	t.Run("With adds fields to child logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger := zap.New(core)

		cl := WithLogger(context.Background(), logger).With(zap.String("component", "stock"))
		cl.Warn("low quantity")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "stock", entries[0].ContextMap()["component"])
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		cl := &ContextLogger{ctx: context.Background()}
		assert.NotPanics(t, func() {
			cl.Debug("ignored")
		})
	})
}
