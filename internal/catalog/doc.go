// Package catalog turns an AutoEQ results checkout into the
// consolidated catalog document.
//
// # Builder
//
// The Builder coordinates the whole generation:
//
//  1. Scan each configured source folder (concurrently, bounded)
//  2. Parse every headphone's ParametricEQ export
//  3. Classify manufacturer, model and form factor from folder names
//  4. Deduplicate across sources by priority
//  5. Sort and stamp the final catalog
//
// # Basic Usage
//
//	builder := catalog.NewBuilder(settings, func(event catalog.ProgressEvent) {
//	    fmt.Fprintln(os.Stderr, event.Message)
//	})
//
//	cat, err := builder.Build(ctx, "/tmp/autoeq/results")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cat.WriteJSON(os.Stdout)
//
// # Deduplication
//
// The same headphone measured by several databases appears once in the
// catalog, keyed case-insensitively by (manufacturer, model). The entry
// from the source with the numerically lowest priority wins; equal
// priorities resolve to the source listed first in the table. Merging
// happens in table order after all scans finish, so concurrent
// scheduling never changes the outcome.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent
// values (Info, Verbose, Warning, Success). All per-item problems are
// skips, not errors; only a missing results root fails the build.
package catalog
