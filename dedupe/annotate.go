package dedupe

import (
	"strconv"

	"github.com/lasvenus88/claim-filter/tabular"
)

// CountColumn is the name of the column appended to annotated output.
const CountColumn = "duplicate_count"

// Annotate builds the output dataset from the retained row indices. Each
// retained row is copied and extended with its key's total occurrence count
// from stats, never the retained sub-count. Source rows are not modified.
func Annotate(ds *tabular.Dataset, kb *KeyBuilder, stats Stats, retained []int) *tabular.Dataset {
	columns := make([]string, 0, len(ds.Columns)+1)
	columns = append(columns, ds.Columns...)
	columns = append(columns, CountColumn)

	rows := make([]tabular.Row, 0, len(retained))
	for _, i := range retained {
		row := ds.Rows[i]
		out := make(tabular.Row, 0, len(row)+1)
		out = append(out, row...)
		out = append(out, strconv.Itoa(stats[kb.Key(row)]))
		rows = append(rows, out)
	}
	return tabular.NewDataset(columns, rows)
}
