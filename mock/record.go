package mock

import (
	"context"

	"github.com/fwojciec/roster"
)

var _ roster.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of roster.RecordService.
type RecordService struct {
	CreateRecordsFn func(ctx context.Context, records []*roster.Record) error
	FindRecordsFn   func(ctx context.Context, filter roster.RecordFilter) ([]*roster.Record, error)
	CountRecordsFn  func(ctx context.Context) (int, error)
}

func (s *RecordService) CreateRecords(ctx context.Context, records []*roster.Record) error {
	return s.CreateRecordsFn(ctx, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter roster.RecordFilter) ([]*roster.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	return s.CountRecordsFn(ctx)
}
