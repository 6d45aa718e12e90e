package tabular

// Row holds one record's values, positionally aligned with the owning
// Dataset's Columns. Rows are never mutated after read; annotation copies
// and extends.
type Row []string

// Dataset is an ordered collection of rows sharing one header. Every row has
// exactly len(Columns) fields, in header order.
type Dataset struct {
	Columns []string
	Rows    []Row

	index map[string]int
}

// NewDataset builds a Dataset over the given header and rows.
func NewDataset(columns []string, rows []Row) *Dataset {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return &Dataset{Columns: columns, Rows: rows, index: index}
}

// ColumnIndex returns the position of the named column in the header, or
// false if the column does not exist. For repeated column names the first
// position wins.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}
