package dedupe

import (
	"testing"

	"github.com/lasvenus88/claim-filter/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(rows ...tabular.Row) *tabular.Dataset {
	return tabular.NewDataset([]string{"name", "city", "amount"}, rows)
}

func TestKeyAllColumns(t *testing.T) {
	ds := testDataset(
		tabular.Row{"X", "NYC", "10"},
		tabular.Row{"X", "NYC", "10"},
		tabular.Row{"X", "NYC", "20"},
	)
	kb, err := NewKeyBuilder(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "city", "amount"}, kb.Columns())

	assert.Equal(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[1]))
	assert.NotEqual(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[2]))
}

func TestKeySubset(t *testing.T) {
	ds := testDataset(
		tabular.Row{"X", "NYC", "10"},
		tabular.Row{"X", "LA", "20"},
		tabular.Row{"Y", "NYC", "10"},
	)
	kb, err := NewKeyBuilder(ds, []string{"name"})
	require.NoError(t, err)

	assert.Equal(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[1]))
	assert.NotEqual(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[2]))
}

func TestKeyMultiColumnSubset(t *testing.T) {
	ds := testDataset(
		tabular.Row{"X", "NYC", "10"},
		tabular.Row{"X", "NYC", "99"},
		tabular.Row{"X", "LA", "10"},
	)
	kb, err := NewKeyBuilder(ds, []string{"name", "city"})
	require.NoError(t, err)

	assert.Equal(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[1]))
	assert.NotEqual(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[2]))
}

func TestKeyExactComparison(t *testing.T) {
	ds := testDataset(
		tabular.Row{"x", "NYC", "10"},
		tabular.Row{"X", "NYC", "10"},
		tabular.Row{" X", "NYC", "10"},
	)
	kb, err := NewKeyBuilder(ds, nil)
	require.NoError(t, err)

	// no case folding, no trimming
	assert.NotEqual(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[1]))
	assert.NotEqual(t, kb.Key(ds.Rows[1]), kb.Key(ds.Rows[2]))
}

// a field containing the join separator must not collide with a different
// tuple whose values split at the same bytes
func TestKeySeparatorInField(t *testing.T) {
	ds := testDataset(
		tabular.Row{"a\x1fb", "c", "1"},
		tabular.Row{"a", "b\x1fc", "1"},
		tabular.Row{"a\x1e", "b", "1"},
		tabular.Row{"a", "\x1eb", "1"},
	)
	kb, err := NewKeyBuilder(ds, nil)
	require.NoError(t, err)

	assert.NotEqual(t, kb.Key(ds.Rows[0]), kb.Key(ds.Rows[1]))
	assert.NotEqual(t, kb.Key(ds.Rows[2]), kb.Key(ds.Rows[3]))

	// identical tuples still agree
	assert.Equal(t, kb.Key(ds.Rows[0]), kb.Key(tabular.Row{"a\x1fb", "c", "1"}))
}

func TestKeyUnknownColumn(t *testing.T) {
	ds := testDataset(tabular.Row{"X", "NYC", "10"})

	_, err := NewKeyBuilder(ds, []string{"name", "zipcode"})
	require.Error(t, err)
	ce, ok := err.(ConfigError)
	require.True(t, ok)
	assert.Contains(t, ce.Error(), "zipcode")
}
