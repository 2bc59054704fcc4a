package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/middleware"
	"github.com/SscSPs/bikeshop_backoffice/internal/platform/clock"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils/accounting"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock clock.Clock
	NewID accounting.IDGenerator
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithClock overrides the wall clock, mainly for tests
func WithClock(c clock.Clock) ServiceOption {
	return func(s *BaseService) {
		s.Clock = c
	}
}

// WithIDGenerator overrides the uuid based id generator
func WithIDGenerator(gen accounting.IDGenerator) ServiceOption {
	return func(s *BaseService) {
		s.NewID = gen
	}
}

func newBaseService(opts ...ServiceOption) BaseService {
	b := BaseService{
		Clock: clock.NewSystemClock(time.UTC),
		NewID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current time from the injected clock
func (s *BaseService) Now() time.Time {
	return s.Clock.Now()
}

// Today returns the current business date
func (s *BaseService) Today() time.Time {
	return accounting.DateOnly(s.Clock.Now())
}

// BusinessDate reads a stored calendar date as a date in the business timezone
func (s *BaseService) BusinessDate(t time.Time) time.Time {
	return accounting.CalendarDate(t, s.Location())
}

// Location is the business timezone of the injected clock
func (s *BaseService) Location() *time.Location {
	return s.Clock.Now().Location()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
