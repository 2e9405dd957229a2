package csvtable

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

const utf8BOM = "\ufeff"

// Columns is the set of trimmed header names found in a table
type Columns map[string]bool

func (c Columns) Has(name string) bool {
	return c[name]
}

// HasAll reports whether every one of names is present
func (c Columns) HasAll(names ...string) bool {
	for _, name := range names {
		if !c[name] {
			return false
		}
	}

	return true
}

// headerTrimmingReader hands gocsv the same rows as the underlying reader
// but with the header cells trimmed, so that " Code " still binds to `csv:"Code"`
type headerTrimmingReader struct {
	*csv.Reader

	columns Columns
}

func (r *headerTrimmingReader) ReadAll() ([][]string, error) {
	records, err := r.Reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		header := records[0]
		for i, name := range header {
			if i == 0 {
				name = strings.TrimPrefix(name, utf8BOM)
			}
			header[i] = strings.TrimSpace(name)
			r.columns[header[i]] = true
		}
	}

	return records, nil
}

// Decode unmarshals every row of in into out (a pointer to a slice of
// structs with `csv` tags) and returns the columns present in the header.
// Cells are decoded as text; callers coerce them afterwards.
func Decode(in io.Reader, out interface{}) (Columns, error) {
	reader := csv.NewReader(in)
	// Allow us to cope with spreadsheet exports that drop trailing empty cells
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	trimmingReader := &headerTrimmingReader{
		Reader:  reader,
		columns: Columns{},
	}

	if err := gocsv.UnmarshalCSV(trimmingReader, out); err != nil {
		return trimmingReader.columns, err
	}

	return trimmingReader.columns, nil
}

// ParseFloat coerces a cell into a coordinate. Blank, unparseable and
// non-finite cells come back as nil rather than an error.
func ParseFloat(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &value
}

// missingMarkers are the placeholder cells spreadsheet exports use for
// an empty value. Matching is exact, as pandas does.
var missingMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true, "<NA>": true,
	"N/A": true, "n/a": true, "NA": true,
	"NULL": true, "null": true, "None": true,
	"NaN": true, "-NaN": true, "nan": true, "-nan": true,
}

// IsMissing is true for blank cells and for placeholders such as N/A
func IsMissing(cell string) bool {
	cell = strings.TrimSpace(cell)

	return cell == "" || missingMarkers[cell]
}

// OptionalString returns nil for missing cells
func OptionalString(cell string) *string {
	if IsMissing(cell) {
		return nil
	}
	cell = strings.TrimSpace(cell)

	return &cell
}
