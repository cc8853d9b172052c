package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormLog "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// gormLogger forwards gorm's logging to slog
type gormLogger struct {
	slowThreshold time.Duration
	level         gormLog.LogLevel
	logger        *slog.Logger
}

func newGormLogger(logger *slog.Logger, slowThreshold time.Duration) *gormLogger {
	return &gormLogger{logger: logger, slowThreshold: slowThreshold, level: gormLog.Warn}
}

func (l *gormLogger) LogMode(level gormLog.LogLevel) gormLog.Interface {
	return &gormLogger{slowThreshold: l.slowThreshold, level: level, logger: l.logger}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormLog.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormLog.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormLog.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormLog.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormLog.Error:
		l.logger.ErrorContext(ctx, "SQL error",
			slog.String("file", utils.FileWithLineNum()),
			slog.String("elapsed", elapsed.String()),
			slog.Int64("rows", rows),
			slog.String("err", err.Error()),
			slog.String("sql", sql),
		)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormLog.Warn:
		l.logger.WarnContext(ctx, fmt.Sprintf("SLOW SQL >= %v", l.slowThreshold),
			slog.String("file", utils.FileWithLineNum()),
			slog.String("elapsed", elapsed.String()),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	default:
		l.logger.DebugContext(ctx, "SQL trace",
			slog.String("elapsed", elapsed.String()),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}
