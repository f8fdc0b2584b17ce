// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, JSON response writing,
// the outbound HTTP client and trace ID generation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace ID is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace ID; ok is false when it is
// missing or empty.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

const maxTraceIDLen = 64

// NewTraceID returns a time-ordered (v7) UUID, or a random one if the clock
// read fails.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// AcceptTraceID reports whether an incoming trace ID can be propagated as is.
// It must be short printable ASCII so it is safe in logs and headers.
func AcceptTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(traceID); i++ {
		if c := traceID[i]; c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
