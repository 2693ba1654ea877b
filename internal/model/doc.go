// Package model defines the core data structures of the AutoEQ catalog
// generator.
//
// # Filter and Profile
//
// Filter is one parametric EQ band; Profile is what the peq parser
// produces for a single headphone (preamp + ordered bands):
//
//	f := model.Filter{Type: model.FilterPeaking, Freq: 105, Q: 0.7, Gain: -3.5}
//	p := model.Profile{Preamp: -2.0, Filters: []model.Filter{f}}
//
// # Entry and Catalog
//
// Entry couples a Profile with the identity derived from the directory
// layout (manufacturer, model, source, form factor). Catalog is the
// final sorted, deduplicated document:
//
//	cat := model.NewCatalog(entries, time.Now())
//	cat.WriteJSON(os.Stdout)
//
// The JSON field names on these structs are the output contract of the
// generator; changing them changes the document consumers see.
package model
