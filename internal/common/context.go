package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyWorkerID contextKey = "worker_id"
)

// WithWorkerID tags a context with the worker driving the current job.
func WithWorkerID(ctx context.Context, workerID string) context.Context {
	return context.WithValue(ctx, ContextKeyWorkerID, workerID)
}

// WorkerIDFromContext extracts the worker ID from context
func WorkerIDFromContext(ctx context.Context) string {
	if workerID, ok := ctx.Value(ContextKeyWorkerID).(string); ok {
		return workerID
	}
	return ""
}
