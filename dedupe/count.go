package dedupe

import (
	"log"

	"github.com/lasvenus88/claim-filter/tabular"
	"github.com/sbwhitecap/tqdm"
	"github.com/sbwhitecap/tqdm/iterators"
)

// Stats maps each grouping key to the total number of rows sharing it in
// the source dataset. Computed once, read-only thereafter.
type Stats map[Key]int

// Count tallies rows per grouping key in one pass over the dataset. The
// result is deterministic for a given dataset and builder. When progress is
// true a terminal progress bar tracks the scan; it never changes the
// result.
func Count(ds *tabular.Dataset, kb *KeyBuilder, progress bool) Stats {
	stats := make(Stats)
	tally := func(i int) {
		stats[kb.Key(ds.Rows[i])]++
	}

	if progress {
		if err := tqdm.With(iterators.Interval(0, ds.Len()), "Scanning rows", func(c interface{}) (brk bool) {
			tally(c.(int))
			return
		}); err != nil {
			log.Printf("progress bar stopped early: %v", err)
		}
		return stats
	}

	for i := 0; i < ds.Len(); i++ {
		tally(i)
	}
	return stats
}
