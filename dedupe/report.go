package dedupe

import (
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/lasvenus88/claim-filter/errors"
	"github.com/lasvenus88/claim-filter/fileutil"
	"github.com/lasvenus88/claim-filter/tabular"
	"github.com/montanaflynn/stats"
)

// PatternStat describes one duplicated key: its pattern text, how many rows
// carried it, and how many of those make it into the output.
type PatternStat struct {
	Pattern  string `csv:"pattern"`
	Count    int    `csv:"count"`
	Retained int    `csv:"retained"`
}

// BuildReport lists every key that occurs at least twice, sorted by count
// descending then pattern text, so reruns produce identical reports. The
// pattern renders the key's values joined with "|".
func BuildReport(st Stats, limit int) []PatternStat {
	var recs []PatternStat
	for k, count := range st {
		if count < 2 {
			continue
		}
		retained := count
		if retained > limit {
			retained = limit
		}
		recs = append(recs, PatternStat{
			Pattern:  strings.ReplaceAll(string(k), keySep, "|"),
			Count:    count,
			Retained: retained,
		})
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Count != recs[j].Count {
			return recs[i].Count > recs[j].Count
		}
		return recs[i].Pattern < recs[j].Pattern
	})
	return recs
}

// DefaultReportPath places the pattern report next to the main output file.
// Scheme-safe, so an s3:// destination gets an s3:// report.
func DefaultReportPath(outputPath string) string {
	return fileutil.Join(fileutil.Dir(outputPath), "duplicate_patterns.csv")
}

// WriteReport saves pattern stats as a CSV at path. The destination becomes
// visible only on full success.
func WriteReport(path string, recs []PatternStat) (err error) {
	f, err := fileutil.NewSafeWriter(path)
	if err != nil {
		return tabular.OutputError{Path: path, Err: err}
	}
	defer errors.Defer(&err, f.Close)

	if err := gocsv.Marshal(&recs, f); err != nil {
		return tabular.OutputError{Path: path, Err: err}
	}
	if err := f.Commit(); err != nil {
		return tabular.OutputError{Path: path, Err: err}
	}
	return nil
}

// Summary carries the run totals logged after analysis.
type Summary struct {
	Rows               int
	Patterns           int
	DuplicatedPatterns int
	RetainedRows       int
	MeanGroupSize      float64
	MaxGroupSize       float64
}

// Summarize derives run totals from the key counts and the retention limit.
func Summarize(st Stats, limit int) Summary {
	s := Summary{Patterns: len(st)}
	sizes := make([]float64, 0, len(st))
	for _, count := range st {
		s.Rows += count
		sizes = append(sizes, float64(count))
		if count >= 2 {
			s.DuplicatedPatterns++
		}
		if count > limit {
			s.RetainedRows += limit
		} else {
			s.RetainedRows += count
		}
	}
	if len(sizes) > 0 {
		s.MeanGroupSize, _ = stats.Mean(sizes)
		s.MaxGroupSize, _ = stats.Max(sizes)
	}
	return s
}
