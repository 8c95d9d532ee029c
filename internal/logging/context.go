package logging

import "context"

type contextKey int

// LogDataKey is the context key under which the logging middleware stores the
// request's LogData.
const LogDataKey contextKey = iota

// WithLogData attaches a LogData to the context so handlers further down the
// chain can record timings and fields onto the same log entry.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, LogDataKey, logData)
}

// GetLogData returns the LogData carried by the context, or nil when the
// request did not pass through the logging middleware (e.g. in tests).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(LogDataKey).(*LogData)
	return logData
}
