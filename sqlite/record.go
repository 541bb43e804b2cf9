package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/roster"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ roster.RecordService = (*RecordService)(nil)

// RecordService implements roster.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecords appends records after any existing rows, in slice order.
// IDs and positions are assigned on the given records.
func (s *RecordService) CreateRecords(ctx context.Context, records []*roster.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var base int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM records").Scan(&base); err != nil {
		return fmt.Errorf("failed to read next position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, position, person_name, first_name, last_name,
			degree_type_name, degree_institution, degree_year, is_emeritus, is_administration)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		r.ID = uuid.New().String()
		r.Position = base + i
		if _, err := stmt.ExecContext(ctx, r.ID, r.Position, r.PersonName, r.FirstName, r.LastName,
			r.DegreeTypeName, r.DegreeInstitution, r.DegreeYear,
			boolToInt(r.IsEmeritus), boolToInt(r.IsAdministration)); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter in position order.
func (s *RecordService) FindRecords(ctx context.Context, filter roster.RecordFilter) ([]*roster.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, position, person_name, first_name, last_name,
		degree_type_name, degree_institution, degree_year, is_emeritus, is_administration
		FROM records WHERE 1=1`)

	if filter.PersonName != nil {
		query.WriteString(" AND person_name = ?")
		args = append(args, *filter.PersonName)
	}

	query.WriteString(" ORDER BY position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*roster.Record
	for rows.Next() {
		var r roster.Record
		var emeritus, administration int
		if err := rows.Scan(&r.ID, &r.Position, &r.PersonName, &r.FirstName, &r.LastName,
			&r.DegreeTypeName, &r.DegreeInstitution, &r.DegreeYear, &emeritus, &administration); err != nil {
			return nil, err
		}
		r.IsEmeritus = emeritus == 1
		r.IsAdministration = administration == 1
		records = append(records, &r)
	}

	return records, rows.Err()
}

// CountRecords returns the number of records in the table.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
