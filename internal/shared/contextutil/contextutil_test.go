package contextutil_test

import (
	"context"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetRequestID(ctx))
	assert.Empty(t, contextutil.GetUserID(ctx))

	ctx = contextutil.WithRequestID(ctx, "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "user-1", contextutil.GetUserID(ctx))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewNop().Named("fallback")
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
