package model

// FilterType identifies the shape of one parametric EQ band.
//
// The values match the canonical type names used in the catalog JSON,
// so a FilterType can be marshalled directly.
type FilterType string

const (
	// FilterPeaking is a peaking (bell) filter.
	FilterPeaking FilterType = "peaking"

	// FilterLowShelf boosts or cuts everything below the corner frequency.
	FilterLowShelf FilterType = "lowShelf"

	// FilterHighShelf boosts or cuts everything above the corner frequency.
	FilterHighShelf FilterType = "highShelf"

	// FilterLowPass attenuates everything above the corner frequency.
	FilterLowPass FilterType = "lowPass"

	// FilterHighPass attenuates everything below the corner frequency.
	FilterHighPass FilterType = "highPass"
)

// Filter represents a single parametric EQ band.
//
// A Filter is immutable once parsed. Values are taken from the source
// file as-is: no range validation is performed, so a malformed export
// can yield e.g. a zero Q or a negative frequency. Consumers that care
// must check themselves.
//
// Example:
//
//	f := model.Filter{Type: model.FilterPeaking, Freq: 105, Q: 0.7, Gain: -3.5}
//	// Serializes as {"type":"peaking","freq":105,"q":0.7,"gain":-3.5}
type Filter struct {
	// Type is the band shape (peaking, shelf, pass).
	Type FilterType `json:"type"`

	// Freq is the center/corner frequency in Hz.
	Freq float64 `json:"freq"`

	// Q is the quality factor controlling the band width.
	Q float64 `json:"q"`

	// Gain is the band gain in dB. Conceptually zero for pass filters,
	// though the parser does not enforce that.
	Gain float64 `json:"gain"`
}

// Profile is the result of parsing one headphone's ParametricEQ export:
// a preamp adjustment plus the enabled filter bands in file order.
//
// A Profile with no filters is never produced by the parser; an export
// that yields zero usable bands is treated as absent instead.
type Profile struct {
	// Preamp is the global gain adjustment in dB, usually negative to
	// leave headroom for boosting bands.
	Preamp float64

	// Filters holds the enabled bands in the order they appear in the
	// source file.
	Filters []Filter
}
