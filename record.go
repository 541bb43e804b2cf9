package roster

import (
	"context"
	"strings"
)

// Placeholders rendered in answers for absent record fields.
const (
	UnknownName        = "Unknown"
	UnknownDegree      = "unknown degree"
	UnknownInstitution = "unknown institution"
	UnknownYear        = "unknown year"
)

// Record represents one person row of the record table.
// Empty string fields are absent in the source data.
type Record struct {
	ID                string `json:"id"`
	PersonName        string `json:"personName"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	DegreeTypeName    string `json:"degreeTypeName"`
	DegreeInstitution string `json:"degreeInstitution"`
	DegreeYear        string `json:"degreeYear"`
	IsEmeritus        bool   `json:"isEmeritus"`
	IsAdministration  bool   `json:"isAdministration"`
	Position          int    `json:"position"`
}

// Names returns the non-empty name values of the record, lowercased,
// in PersonName, FirstName, LastName order.
func (r *Record) Names() []string {
	names := make([]string, 0, 3)
	for _, n := range []string{r.PersonName, r.FirstName, r.LastName} {
		if n == "" {
			continue
		}
		names = append(names, strings.ToLower(n))
	}
	return names
}

// DisplayName returns the person name or the UnknownName placeholder.
func (r *Record) DisplayName() string {
	return orDefault(r.PersonName, UnknownName)
}

// DisplayDegree returns the degree type or the UnknownDegree placeholder.
func (r *Record) DisplayDegree() string {
	return orDefault(r.DegreeTypeName, UnknownDegree)
}

// DisplayInstitution returns the institution or the UnknownInstitution placeholder.
func (r *Record) DisplayInstitution() string {
	return orDefault(r.DegreeInstitution, UnknownInstitution)
}

// DisplayYear returns the degree year or the UnknownYear placeholder.
func (r *Record) DisplayYear() string {
	return orDefault(r.DegreeYear, UnknownYear)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// RecordService represents a service for managing the record table.
type RecordService interface {
	// CreateRecords appends records to the table in the given order.
	CreateRecords(ctx context.Context, records []*Record) error

	// FindRecords retrieves records matching the filter in table order.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// CountRecords returns the number of records in the table.
	CountRecords(ctx context.Context) (int, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	PersonName *string `json:"personName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
