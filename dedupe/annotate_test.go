package dedupe

import (
	"testing"

	"github.com/lasvenus88/claim-filter/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPipeline(t *testing.T, ds *tabular.Dataset, columns []string, limit int) *tabular.Dataset {
	t.Helper()
	kb, err := NewKeyBuilder(ds, columns)
	require.NoError(t, err)
	st := Count(ds, kb, false)
	retained, err := Sample(ds, kb, limit)
	require.NoError(t, err)
	return Annotate(ds, kb, st, retained)
}

func TestAnnotateAppendsHeader(t *testing.T) {
	ds := testDataset(tabular.Row{"X", "NYC", "10"})
	out := runPipeline(t, ds, nil, 5)
	assert.Equal(t, []string{"name", "city", "amount", "duplicate_count"}, out.Columns)
}

// the annotation is the group's total count, not the retained sub-count
func TestAnnotateUsesOriginalTotal(t *testing.T) {
	ds := testDataset(repeatRows(tabular.Row{"X", "NYC", "10"}, 7)...)
	out := runPipeline(t, ds, nil, 5)

	require.Equal(t, 5, out.Len())
	for _, row := range out.Rows {
		assert.Equal(t, "7", row[len(row)-1])
	}
}

func TestAnnotateSingletons(t *testing.T) {
	ds := testDataset(
		tabular.Row{"A", "NYC", "10"},
		tabular.Row{"B", "LA", "20"},
		tabular.Row{"C", "SF", "30"},
	)
	out := runPipeline(t, ds, nil, 5)

	require.Equal(t, 3, out.Len())
	for _, row := range out.Rows {
		assert.Equal(t, "1", row[len(row)-1])
	}
}

func TestAnnotateSmallGroup(t *testing.T) {
	ds := testDataset(repeatRows(tabular.Row{"X", "NYC", "10"}, 3)...)
	out := runPipeline(t, ds, nil, 5)

	require.Equal(t, 3, out.Len())
	for _, row := range out.Rows {
		assert.Equal(t, "3", row[len(row)-1])
	}
}

// rows sharing only the grouping column count as duplicates but keep their
// own field values
func TestAnnotateSubsetColumns(t *testing.T) {
	ds := testDataset(
		tabular.Row{"X", "NYC", "10"},
		tabular.Row{"X", "LA", "20"},
	)
	out := runPipeline(t, ds, []string{"name"}, 5)

	require.Equal(t, 2, out.Len())
	assert.Equal(t, tabular.Row{"X", "NYC", "10", "2"}, out.Rows[0])
	assert.Equal(t, tabular.Row{"X", "LA", "20", "2"}, out.Rows[1])
}

func TestAnnotateDoesNotMutateSource(t *testing.T) {
	ds := testDataset(tabular.Row{"X", "NYC", "10"})
	runPipeline(t, ds, nil, 5)
	assert.Equal(t, tabular.Row{"X", "NYC", "10"}, ds.Rows[0])
	assert.Equal(t, []string{"name", "city", "amount"}, ds.Columns)
}
