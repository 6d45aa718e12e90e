package main

import (
	"log"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/lasvenus88/claim-filter/dedupe"
	"github.com/lasvenus88/claim-filter/tabular"
)

const debugHeadRows = 5

func main() {
	args := struct {
		Input         string   `arg:"required" help:"source file (local path, s3:// or http(s)://)"`
		Output        string   `arg:"required" help:"destination file (local path or s3://)"`
		Columns       []string `help:"columns used for duplicate detection (default: all columns)"`
		MaxDuplicates int      `help:"max rows retained per duplicate pattern"`
		Delimiter     string   `help:"field delimiter"`
		Stats         bool     `help:"write the per-pattern stats CSV next to the output"`
		StatsPath     string   `help:"per-pattern stats CSV destination; overrides --stats"`
		Debug         bool     `help:"log extra diagnostics; never changes the output"`
	}{
		MaxDuplicates: 5,
		Delimiter:     ",",
	}
	arg.MustParse(&args)

	delim, err := parseDelimiter(args.Delimiter)
	if err != nil {
		log.Fatal(err)
	}
	if err := dedupe.ValidateLimit(args.MaxDuplicates); err != nil {
		log.Fatal(err)
	}

	log.Printf("reading %s", args.Input)
	ds, err := tabular.Read(args.Input, delim)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %s rows, columns: %v", humanize.Comma(int64(ds.Len())), ds.Columns)

	kb, err := dedupe.NewKeyBuilder(ds, args.Columns)
	if err != nil {
		log.Fatal(err)
	}

	stats := dedupe.Count(ds, kb, true)

	retained, err := dedupe.Sample(ds, kb, args.MaxDuplicates)
	if err != nil {
		log.Fatal(err)
	}
	out := dedupe.Annotate(ds, kb, stats, retained)

	summary := dedupe.Summarize(stats, args.MaxDuplicates)
	log.Printf("%s distinct patterns, %s duplicated, mean group size %.2f, max %s",
		humanize.Comma(int64(summary.Patterns)),
		humanize.Comma(int64(summary.DuplicatedPatterns)),
		summary.MeanGroupSize,
		humanize.Comma(int64(summary.MaxGroupSize)))

	if args.Debug {
		logDebug(ds, kb, stats, args.MaxDuplicates)
	}

	if err := tabular.Write(args.Output, out, delim); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s rows to %s", humanize.Comma(int64(out.Len())), args.Output)

	statsPath := args.StatsPath
	if statsPath == "" && args.Stats {
		statsPath = dedupe.DefaultReportPath(args.Output)
	}
	if statsPath != "" {
		recs := dedupe.BuildReport(stats, args.MaxDuplicates)
		if err := dedupe.WriteReport(statsPath, recs); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s duplicate patterns to %s", humanize.Comma(int64(len(recs))), statsPath)
	}
}

func parseDelimiter(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, dedupe.ConfigError{Msg: "delimiter must be a single character"}
	}
	return runes[0], nil
}

// logDebug mirrors what processing saw: the head of the input, the grouping
// columns, and every duplicated pattern. Diagnostics only, the output file
// is built solely from the annotated dataset.
func logDebug(ds *tabular.Dataset, kb *dedupe.KeyBuilder, stats dedupe.Stats, limit int) {
	head := ds.Len()
	if head > debugHeadRows {
		head = debugHeadRows
	}
	log.Printf("debug: first %d rows:", head)
	for i := 0; i < head; i++ {
		log.Printf("debug:   %s", strings.Join(ds.Rows[i], ", "))
	}

	log.Printf("debug: duplicate check based on columns %v", kb.Columns())
	for _, rec := range dedupe.BuildReport(stats, limit) {
		log.Printf("debug: pattern [%s] seen %d times, %d retained", rec.Pattern, rec.Count, rec.Retained)
	}
}
