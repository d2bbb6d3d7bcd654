package dof

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx. Parse traces its stages on l at debug level
// and reports duplicate-key warnings at warn level.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

var discardLogger = log.NewWithOptions(io.Discard, log.Options{})

// loggerFrom returns the attached logger, or one that discards everything.
func loggerFrom(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
			return l
		}
	}
	return discardLogger
}
