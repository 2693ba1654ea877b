package model

import "strings"

// FormFactor is the physical category of a headphone.
type FormFactor string

const (
	// FormFactorInEar covers in-ear monitors and other canal-sealing designs.
	FormFactorInEar FormFactor = "in-ear"

	// FormFactorEarbud covers loose-fitting earbuds that rest in the concha.
	FormFactorEarbud FormFactor = "earbud"

	// FormFactorOverEar covers circumaural and supra-aural headphones.
	// It is the default classification.
	FormFactorOverEar FormFactor = "over-ear"
)

// Entry is one headphone's EQ profile as it appears in the catalog,
// combining the parsed Profile with the identity derived from the
// directory layout.
//
// Two entries are considered the same headphone when their Key values
// match; the catalog keeps at most one Entry per Key, chosen by source
// priority.
type Entry struct {
	// ID is the source-qualified identifier, "<source>/<folder name>".
	// The folder name is kept verbatim so the entry can be traced back
	// to the measurement it came from.
	ID string `json:"id"`

	// Manufacturer is the brand name split off the folder name.
	Manufacturer string `json:"manufacturer"`

	// Model is the remainder of the folder name after the manufacturer.
	Model string `json:"model"`

	// Source is the normalized name of the measurement database this
	// entry was taken from, e.g. "oratory1990".
	Source string `json:"source"`

	// FormFactor is derived from the target folder grouping the entry.
	FormFactor FormFactor `json:"formFactor"`

	// Preamp is the profile's global gain adjustment in dB.
	Preamp float64 `json:"preamp"`

	// Filters holds the profile's bands in source-file order.
	Filters []Filter `json:"filters"`
}

// Key returns the case-insensitive identity key used for deduplication
// across sources.
//
// Example:
//
//	e := model.Entry{Manufacturer: "Sennheiser", Model: "HD 600"}
//	e.Key() // "sennheiser\x00hd 600"
func (e *Entry) Key() string {
	return strings.ToLower(e.Manufacturer) + "\x00" + strings.ToLower(e.Model)
}
