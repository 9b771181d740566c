package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger is a custom logger for GORM that uses zap
type GormLogger struct {
	ZapLogger     *zap.Logger
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger that writes through zapLogger.
// logLevel uses the application level names; slowQuerySeconds of 0 disables
// slow query warnings.
func NewGormLogger(zapLogger *zap.Logger, slowQuerySeconds float64, logLevel string) *GormLogger {
	// Parse log level
	var level gormlogger.LogLevel
	switch logLevel {
	case "silent":
		level = gormlogger.Silent
	case "error":
		level = gormlogger.Error
	case "warn", "warning":
		level = gormlogger.Warn
	case "info", "debug":
		level = gormlogger.Info
	default:
		level = gormlogger.Warn
	}

	return &GormLogger{
		ZapLogger:     zapLogger.Named("gorm"),
		SlowThreshold: time.Duration(slowQuerySeconds * float64(time.Second)),
		LogLevel:      level,
	}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		WithContext(ctx, l.ZapLogger).Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		WithContext(ctx, l.ZapLogger).Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		WithContext(ctx, l.ZapLogger).Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	// Truncate SQL if too long (prevent log flooding)
	const maxSQLLength = 1000
	truncated := false
	if len(sql) > maxSQLLength {
		sql = sql[:maxSQLLength] + "..."
		truncated = true
	}

	// Get logger with context (includes request_id if available)
	logger := WithContext(ctx, l.ZapLogger)

	// Base fields
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	if truncated {
		fields = append(fields, zap.Bool("sql_truncated", true))
	}

	// Log errors (except ErrRecordNotFound which is not really an error)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		if l.LogLevel >= gormlogger.Error {
			logger.Error("gorm query error", append(fields, zap.Error(err))...)
		}
		return
	}

	// Log slow queries as warnings
	if l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn {
		logger.Warn("gorm slow query", append(fields, zap.Duration("threshold", l.SlowThreshold))...)
		return
	}

	// Log all queries at debug level
	if l.LogLevel >= gormlogger.Info {
		logger.Debug("gorm query", fields...)
	}
}

// ParamsFilter implements gorm.ParamsFilter. Bound values are dropped so
// traced SQL keeps its placeholders and user data never reaches the log.
func (l *GormLogger) ParamsFilter(_ context.Context, sql string, _ ...interface{}) (string, []interface{}) {
	return sql, nil
}
