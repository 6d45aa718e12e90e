package tabular

import (
	"encoding/csv"

	"github.com/lasvenus88/claim-filter/errors"
	"github.com/lasvenus88/claim-filter/fileutil"
)

// Write serializes the dataset to path, header first, overwriting any
// existing file. The destination becomes visible only after a fully
// successful serialization; a failure mid-write leaves it untouched and
// returns an OutputError.
func Write(path string, ds *Dataset, delim rune) (err error) {
	f, err := fileutil.NewSafeWriter(path)
	if err != nil {
		return OutputError{Path: path, Err: err}
	}
	defer errors.Defer(&err, f.Close)

	w := csv.NewWriter(f)
	w.Comma = delim

	if err := w.Write(ds.Columns); err != nil {
		return OutputError{Path: path, Err: err}
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return OutputError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return OutputError{Path: path, Err: err}
	}

	if err := f.Commit(); err != nil {
		return OutputError{Path: path, Err: err}
	}
	return nil
}
