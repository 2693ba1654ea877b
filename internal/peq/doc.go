// Package peq parses EqualizerAPO-style ParametricEQ text exports into
// typed profiles.
//
// An export is a plain text file with one directive per line:
//
//	Preamp: -6.4 dB
//	Filter 1: ON PK Fc 21 Hz Gain 6.4 dB Q 0.61
//	Filter 2: ON LSC Fc 105 Hz Gain -2.0 dB Q 0.70
//
// Parsing is deliberately forgiving. Numeric fields are located by
// their tokens (Fc, Gain, Q) anywhere in the line rather than by a
// fixed line format, missing fields fall back to defaults, disabled
// bands are skipped, and unrecognized lines are ignored. No range
// validation is applied to the extracted values.
//
//	profile, ok := peq.ParseFile("Sony WH-1000XM4 ParametricEQ.txt")
//	if ok {
//	    fmt.Printf("preamp %.1f dB, %d bands\n", profile.Preamp, len(profile.Filters))
//	}
package peq
