package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/roster"
)

// Ensure LoggingRecordService implements roster.RecordService.
var _ roster.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   roster.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next roster.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecords delegates to the wrapped service and logs the row count.
func (s *LoggingRecordService) CreateRecords(ctx context.Context, records []*roster.Record) error {
	begin := time.Now()
	err := s.next.CreateRecords(ctx, records)
	s.logger.Info("records loaded",
		"count", len(records),
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter roster.RecordFilter) ([]*roster.Record, error) {
	begin := time.Now()
	records, err := s.next.FindRecords(ctx, filter)
	s.logger.Debug("find records",
		"count", len(records),
		"duration", time.Since(begin),
		"error", err,
	)
	return records, err
}

// CountRecords delegates to the wrapped service.
func (s *LoggingRecordService) CountRecords(ctx context.Context) (int, error) {
	return s.next.CountRecords(ctx)
}
