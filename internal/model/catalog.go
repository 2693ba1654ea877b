package model

import (
	"encoding/json"
	"io"
	"sort"
	"strings"
	"time"
)

// CatalogVersion is the schema version stamped into every generated
// catalog. Bump only when the JSON shape changes incompatibly.
const CatalogVersion = 1

// Catalog is the final deduplicated collection of entries plus
// generation metadata, matching the JSON document shape one-to-one.
//
// Invariants:
//   - every Entry carries at least one Filter
//   - Entry.Key() is unique across Entries
//   - Entries are sorted by (manufacturer, model), case-insensitively
type Catalog struct {
	// Version is the catalog schema version (CatalogVersion).
	Version int `json:"version"`

	// GeneratedAt is the RFC 3339 UTC timestamp of generation.
	GeneratedAt string `json:"generatedAt"`

	// EntryCount equals len(Entries); embedded so consumers can read
	// it without decoding the whole entries array.
	EntryCount int `json:"entryCount"`

	// Entries holds the deduplicated, sorted headphone entries.
	Entries []Entry `json:"entries"`
}

// NewCatalog assembles a Catalog from the given entries, sorting them
// by (manufacturer, model) case-insensitively and stamping the version
// and generation time.
//
// The entries slice is sorted in place. Deduplication is the caller's
// responsibility; NewCatalog only orders and stamps.
func NewCatalog(entries []Entry, now time.Time) *Catalog {
	sort.SliceStable(entries, func(i, j int) bool {
		mi := strings.ToLower(entries[i].Manufacturer)
		mj := strings.ToLower(entries[j].Manufacturer)
		if mi != mj {
			return mi < mj
		}
		return strings.ToLower(entries[i].Model) < strings.ToLower(entries[j].Model)
	})

	return &Catalog{
		Version:     CatalogVersion,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		EntryCount:  len(entries),
		Entries:     entries,
	}
}

// WriteJSON serializes the catalog to w as pretty-printed JSON with
// 2-space indentation, followed by a trailing newline.
func (c *Catalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ReadCatalog decodes a catalog previously written with WriteJSON.
//
// Used by the browser TUI; the generator never reads catalogs back.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
