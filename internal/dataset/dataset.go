package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Dataset is raw tabular data: a header row naming the columns and the
// data records in file order. Values are untyped strings exactly as they
// appeared in the source.
type Dataset struct {
	Header  []string
	Records [][]string

	index map[string]int
}

// Read parses CSV content from r. The first record is the header; every
// following record is data. Standard comma delimiter and double-quote
// escaping apply.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv input is empty (no header row)")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv records: %w", err)
	}

	ds := &Dataset{
		Header:  header,
		Records: records,
		index:   make(map[string]int, len(header)),
	}
	for i, name := range header {
		// First occurrence wins for duplicated header names.
		if _, exists := ds.index[name]; !exists {
			ds.index[name] = i
		}
	}

	return ds, nil
}

// ReadString parses CSV content from a string. Convenience for tests.
func ReadString(content string) (*Dataset, error) {
	return Read(strings.NewReader(content))
}

// ColumnIndex returns the position of the named column in the header.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	idx, ok := d.index[name]
	return idx, ok
}

// Len returns the number of data records.
func (d *Dataset) Len() int {
	return len(d.Records)
}
