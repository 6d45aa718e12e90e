package tabular

import (
	"encoding/csv"
	"io"

	"github.com/lasvenus88/claim-filter/errors"
	"github.com/lasvenus88/claim-filter/fileutil"
)

// Read loads the whole delimited file at path into memory. The first record
// is the header; every subsequent record must have the same field count.
// Returns an InputError when the file is missing or unreadable, when a row
// is malformed, or when there are no data rows.
func Read(path string, delim rune) (*Dataset, error) {
	f, err := fileutil.NewReader(path)
	if err != nil {
		return nil, InputError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	// field-count enforcement is per record against the header below
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, InputError{Path: path, Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, InputError{Path: path, Err: err}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, InputError{Path: path, Line: line, Err: err}
		}
		if len(record) != len(header) {
			return nil, InputError{
				Path: path,
				Line: line,
				Err:  errors.Errorf("row has %d fields, header has %d", len(record), len(header)),
			}
		}
		rows = append(rows, Row(record))
	}

	if len(rows) == 0 {
		return nil, InputError{Path: path, Err: errors.New("no data rows")}
	}
	return NewDataset(header, rows), nil
}
