// Package csv loads the record table from CSV files.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/roster"
)

// Column names of the record table. Header matching is case-sensitive.
const (
	ColumnPersonName        = "personname"
	ColumnFirstName         = "firstname"
	ColumnLastName          = "lastname"
	ColumnDegreeTypeName    = "degreetypename"
	ColumnDegreeInstitution = "degreeinstitution"
	ColumnDegreeYear        = "degreeyear"
	ColumnIsEmeritus        = "isemeritus"
	ColumnIsAdministration  = "isadministration"
)

// missingValues are cell values treated as absent.
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#NA": {}, "<NA>": {}, "N/A": {}, "n/a": {}, "NA": {},
	"NULL": {}, "null": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {}, "None": {},
}

// Load reads records from the CSV file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is empty
// or malformed.
func Load(path string) ([]*roster.Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, roster.Errorf(roster.ENOTFOUND, "data file %q not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

// Decode reads records from CSV data with a header row. Unknown columns are
// ignored and missing columns leave the corresponding fields absent. Rows
// with more fields than the header are rejected.
func Decode(r io.Reader) ([]*roster.Record, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, roster.Errorf(roster.EINVALID, "no columns to parse from file")
	}
	if err != nil {
		return nil, roster.Errorf(roster.EINVALID, "malformed header: %s", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	var records []*roster.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, roster.Errorf(roster.EINVALID, "malformed row: %s", err)
		}
		if len(row) > len(header) {
			return nil, roster.Errorf(roster.EINVALID, "line %d: expected %d fields, saw %d", line, len(header), len(row))
		}

		get := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(row) {
				return ""
			}
			v := strings.TrimSpace(row[i])
			if _, missing := missingValues[v]; missing {
				return ""
			}
			return v
		}

		records = append(records, &roster.Record{
			PersonName:        get(ColumnPersonName),
			FirstName:         get(ColumnFirstName),
			LastName:          get(ColumnLastName),
			DegreeTypeName:    get(ColumnDegreeTypeName),
			DegreeInstitution: get(ColumnDegreeInstitution),
			DegreeYear:        normalizeYear(get(ColumnDegreeYear)),
			IsEmeritus:        parseFlag(get(ColumnIsEmeritus)),
			IsAdministration:  parseFlag(get(ColumnIsAdministration)),
			Position:          len(records),
		})
	}

	return records, nil
}

// parseFlag reports whether v equals 1. "true" counts as 1.
func parseFlag(v string) bool {
	if strings.EqualFold(v, "true") {
		return true
	}
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f == 1
}

// normalizeYear turns integral floats such as "2001.0" into "2001".
// Other values are returned unchanged.
func normalizeYear(v string) string {
	if !strings.Contains(v, ".") {
		return v
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return v
	}
	return strconv.FormatFloat(f, 'f', 0, 64)
}
