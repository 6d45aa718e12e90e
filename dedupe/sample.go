package dedupe

import (
	"github.com/lasvenus88/claim-filter/tabular"
)

// ValidateLimit rejects a non-positive retention limit. Callers check it up
// front so a bad limit surfaces before any row is read or counted.
func ValidateLimit(limit int) error {
	if limit < 1 {
		return ConfigError{Msg: "max duplicates must be a positive integer"}
	}
	return nil
}

// Sample scans the dataset in original order and returns the indices of the
// rows to retain: a row is kept iff fewer than limit rows with the same key
// were kept before it. Keys with count <= limit therefore keep all their
// rows; keys with count > limit keep exactly their first limit occurrences.
// No randomness.
func Sample(ds *tabular.Dataset, kb *KeyBuilder, limit int) ([]int, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	kept := make(map[Key]int)
	var retained []int
	for i, row := range ds.Rows {
		k := kb.Key(row)
		if kept[k] < limit {
			kept[k]++
			retained = append(retained, i)
		}
	}
	return retained, nil
}
