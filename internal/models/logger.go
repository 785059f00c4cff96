package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger writes gorm logs to zerolog.
//
// Queries are logged at debug level, slow queries as warnings.
type logger struct {
	Logger        zerolog.Logger
	Level         gorm_logger.LogLevel
	SlowThreshold time.Duration
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	n := *l
	n.Level = level
	return &n
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if l.Level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if l.Level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if l.Level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, ErrEnvelopeNameNotUnique):
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		l.Logger.Warn().Fields(fields).Msg("[GORM] slow query")
	default:
		l.Logger.Debug().Fields(fields).Msg("[GORM] query")
	}
}
