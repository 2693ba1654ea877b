package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/autoeq-catalog/internal/config"
	"github.com/handiism/autoeq-catalog/internal/model"
	"github.com/handiism/autoeq-catalog/internal/naming"
	"github.com/handiism/autoeq-catalog/internal/peq"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelSuccess
)

// ProgressEvent represents a build progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Builder walks an AutoEQ results tree and assembles the catalog.
//
// Per-item problems (missing export file, unparseable profile,
// unexpected plain files in the tree) are reported through the progress
// callback and skipped; one malformed headphone folder never aborts the
// whole generation. Only a missing or invalid results root is fatal.
type Builder struct {
	settings   *config.Settings
	classifier *naming.Classifier
	onProgress func(ProgressEvent)
}

// NewBuilder creates a Builder over the given settings.
//
// onProgress may be nil; pass a callback to surface skip reasons and
// per-source summaries (the CLI does this under -verbose).
func NewBuilder(settings *config.Settings, onProgress func(ProgressEvent)) *Builder {
	return &Builder{
		settings:   settings,
		classifier: naming.NewClassifier(settings.Manufacturers),
		onProgress: onProgress,
	}
}

func (b *Builder) progress(event ProgressEvent) {
	if b.onProgress != nil {
		b.onProgress(event)
	}
}

// scored pairs an entry with its source priority during accumulation.
// The priority never leaves the builder; the serialized entry carries
// only the source name.
type scored struct {
	entry    model.Entry
	priority int
}

// Build scans every configured source under root and returns the
// deduplicated, sorted catalog.
//
// Sources are scanned concurrently (bounded by MaxConcurrentSources)
// but merged strictly in source-table order, so the result is
// independent of scheduling: a headphone present in several sources
// keeps the entry from the source with the numerically lowest
// priority, and equal-priority collisions resolve to the source listed
// first in the table.
func (b *Builder) Build(ctx context.Context, root string) (*model.Catalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("results path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("results path %s is not a directory", root)
	}

	limit := b.settings.MaxConcurrentSources
	if limit < 1 {
		limit = 1
	}

	results := make([][]scored, len(b.settings.Sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, source := range b.settings.Sources {
		i, source := i, source
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = b.scanSource(root, source)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in table order; scanning order must not influence winners.
	best := make(map[string]scored)
	for _, list := range results {
		for _, s := range list {
			key := s.entry.Key()
			if current, ok := best[key]; !ok || s.priority < current.priority {
				best[key] = s
			}
		}
	}

	entries := make([]model.Entry, 0, len(best))
	for _, s := range best {
		entries = append(entries, s.entry)
	}

	cat := model.NewCatalog(entries, time.Now())
	b.progress(ProgressEvent{
		Message: fmt.Sprintf("Merged %d sources into %d entries", len(b.settings.Sources), cat.EntryCount),
		Level:   LevelSuccess,
	})
	return cat, nil
}

// scanSource collects every parseable entry under one source folder.
//
// The hierarchy is source/target/headphone: targets group headphones by
// measuring rig and carry the form factor in their name, headphone
// folders each hold one "<folder name><suffix>" export.
func (b *Builder) scanSource(root string, source config.Source) []scored {
	sourcePath := filepath.Join(root, source.Folder)

	targets, err := os.ReadDir(sourcePath)
	if err != nil {
		// Sources are optional; a checkout may contain only some.
		b.progress(ProgressEvent{
			Message: fmt.Sprintf("Source %s not present, skipping", source.Folder),
			Level:   LevelVerbose,
		})
		return nil
	}

	var out []scored
	for _, target := range targets {
		if !target.IsDir() {
			continue
		}
		formFactor := naming.DetectFormFactor(target.Name())
		targetPath := filepath.Join(sourcePath, target.Name())

		phones, err := os.ReadDir(targetPath)
		if err != nil {
			b.progress(ProgressEvent{
				Message: fmt.Sprintf("Cannot list %s: %v", targetPath, err),
				Level:   LevelWarning,
			})
			continue
		}

		for _, phone := range phones {
			if !phone.IsDir() {
				continue
			}
			folder := phone.Name()
			exportPath := filepath.Join(targetPath, folder, folder+b.settings.ProfileFileSuffix)

			profile, ok := peq.ParseFile(exportPath)
			if !ok {
				b.progress(ProgressEvent{
					Message: fmt.Sprintf("No usable profile for %s/%s", source.Name, folder),
					Level:   LevelVerbose,
				})
				continue
			}

			manufacturer, phoneModel := b.classifier.Split(folder)
			out = append(out, scored{
				entry: model.Entry{
					ID:           source.Name + "/" + folder,
					Manufacturer: manufacturer,
					Model:        phoneModel,
					Source:       source.Name,
					FormFactor:   formFactor,
					Preamp:       profile.Preamp,
					Filters:      profile.Filters,
				},
				priority: source.Priority,
			})
		}
	}

	b.progress(ProgressEvent{
		Message: fmt.Sprintf("Source %s: %d profiles", source.Name, len(out)),
		Level:   LevelInfo,
	})
	return out
}
