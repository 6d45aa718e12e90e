// Package dedupe classifies dataset rows by how often their grouping key
// repeats, retains a capped number of examples per key, and annotates each
// retained row with the key's total occurrence count.
package dedupe

import (
	"fmt"
	"strings"

	"github.com/lasvenus88/claim-filter/tabular"
)

// Key field values are joined with the unit separator; values containing it
// (or the escape byte) are escaped first, so equal keys mean equal value
// tuples.
const (
	keySep = "\x1f"
	keyEsc = "\x1e"
)

// Key identifies rows that are duplicates of one another under the active
// column set. Comparison is exact: byte-equality of field text, no
// normalization beyond the schema-order value tuple.
type Key string

// ConfigError reports invalid configuration, such as a grouping column that
// does not exist in the header. No rows are processed once one is raised.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Msg)
}

// KeyBuilder derives grouping keys from rows of one dataset.
type KeyBuilder struct {
	columns []string
	indices []int
}

// NewKeyBuilder resolves the named columns against the dataset header. An
// empty columns list means all columns in schema order. Returns a
// ConfigError naming the first column absent from the header.
func NewKeyBuilder(ds *tabular.Dataset, columns []string) (*KeyBuilder, error) {
	if len(columns) == 0 {
		indices := make([]int, len(ds.Columns))
		for i := range ds.Columns {
			indices[i] = i
		}
		return &KeyBuilder{columns: ds.Columns, indices: indices}, nil
	}

	indices := make([]int, 0, len(columns))
	for _, c := range columns {
		i, ok := ds.ColumnIndex(c)
		if !ok {
			return nil, ConfigError{Msg: fmt.Sprintf("column %q not found in header %v", c, ds.Columns)}
		}
		indices = append(indices, i)
	}
	return &KeyBuilder{columns: columns, indices: indices}, nil
}

// Columns returns the column names keys are built from.
func (b *KeyBuilder) Columns() []string {
	return b.columns
}

// Key derives the grouping key for a row of the dataset the builder was
// created for.
func (b *KeyBuilder) Key(row tabular.Row) Key {
	if len(b.indices) == 1 {
		return Key(row[b.indices[0]])
	}
	vals := make([]string, len(b.indices))
	for i, idx := range b.indices {
		vals[i] = escapeKeyPart(row[idx])
	}
	return Key(strings.Join(vals, keySep))
}

// escapeKeyPart makes the value-to-key-part mapping injective: an escaped
// value contains no raw separator, so joining parts cannot produce the same
// key for different value tuples.
func escapeKeyPart(v string) string {
	if !strings.ContainsAny(v, keySep+keyEsc) {
		return v
	}
	v = strings.ReplaceAll(v, keyEsc, keyEsc+keyEsc)
	return strings.ReplaceAll(v, keySep, keyEsc+"s")
}
