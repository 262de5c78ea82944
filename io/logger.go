package io

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

var showSQL atomic.Bool

var logger atomic.Pointer[slog.Logger]

//ShowSQL enables statement logging
func ShowSQL(b bool) {
	showSQL.Store(b)
}

//SetLogger sets statement logger, nil restores slog default logger
func SetLogger(aLogger *slog.Logger) {
	logger.Store(aLogger)
}

//LogSQL logs executed statement when ShowSQL is enabled, failed statements are logged at warn level
func LogSQL(ctx context.Context, dialect, SQL string, args []interface{}, elapsed time.Duration, err error) {
	if !showSQL.Load() {
		return
	}
	aLogger := logger.Load()
	if aLogger == nil {
		aLogger = slog.Default()
	}
	attrs := []slog.Attr{
		slog.String("dialect", dialect),
		slog.String("sql", SQL),
		slog.Any("args", args),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		aLogger.LogAttrs(ctx, slog.LevelWarn, "sqlgen statement failed", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	aLogger.LogAttrs(ctx, slog.LevelInfo, "sqlgen statement", attrs...)
}
