package peq

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/handiism/autoeq-catalog/internal/model"
)

// Default values applied when a filter line omits a numeric token.
// 0.707 is the standard Butterworth Q.
const (
	defaultFreq = 1000.0
	defaultGain = 0.0
	defaultQ    = 0.707
)

// filterCode maps an EqualizerAPO short code to its canonical type.
type filterCode struct {
	code string
	typ  model.FilterType
}

// filterCodes is checked in order and the first match wins, so longer
// aliases must precede their shorter prefixes (LSC before LS).
var filterCodes = []filterCode{
	{"PK", model.FilterPeaking},
	{"PEQ", model.FilterPeaking},
	{"LSC", model.FilterLowShelf},
	{"LSB", model.FilterLowShelf},
	{"LS", model.FilterLowShelf},
	{"HSC", model.FilterHighShelf},
	{"HSB", model.FilterHighShelf},
	{"HS", model.FilterHighShelf},
	{"LP", model.FilterLowPass},
	{"LPQ", model.FilterLowPass},
	{"HP", model.FilterHighPass},
	{"HPQ", model.FilterHighPass},
}

// Extraction is token-anchored rather than whole-line-anchored: the
// surrounding text and units ("Hz", "dB") vary between exports and are
// ignored.
var (
	numberRe = regexp.MustCompile(`-?\d+\.?\d*`)
	freqRe   = regexp.MustCompile(`(?i)Fc\s+(\d+\.?\d*)`)
	gainRe   = regexp.MustCompile(`(?i)Gain\s+(-?\d+\.?\d*)`)
	qRe      = regexp.MustCompile(`(?i)\sQ\s+([\d.]+)`)
)

// parsePreamp reports whether line is a preamp declaration and, if so,
// returns the declared value.
//
// A "Preamp:" line without a number still counts as a declaration and
// yields 0.0, matching the tolerant handling of hand-edited exports.
func parsePreamp(line string) (float64, bool) {
	if !strings.HasPrefix(strings.ToLower(line), "preamp:") {
		return 0, false
	}
	if m := numberRe.FindString(line); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return v, true
		}
	}
	return 0, true
}

// parseFilter extracts a filter band from line, reporting false for
// lines that are not enabled filter declarations.
//
// A line qualifies only when it contains "Filter", a colon, and the
// token " ON " (case-insensitive). Disabled bands lack the ON token and
// are skipped on purpose: they are present in the export but not part
// of the effective profile.
func parseFilter(line string) (model.Filter, bool) {
	if !strings.Contains(line, "Filter") || !strings.Contains(line, ":") {
		return model.Filter{}, false
	}

	upper := strings.ToUpper(line)
	if !strings.Contains(upper, " ON ") {
		return model.Filter{}, false
	}

	typ, ok := detectType(upper)
	if !ok {
		return model.Filter{}, false
	}

	f := model.Filter{
		Type: typ,
		Freq: defaultFreq,
		Gain: defaultGain,
		Q:    defaultQ,
	}

	if m := freqRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.Freq = v
		}
	}
	if m := gainRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.Gain = v
		}
	}
	if m := qRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			f.Q = v
		}
	}

	return f, true
}

// detectType finds the first filter code that appears space-delimited
// in the uppercased line.
func detectType(upper string) (model.FilterType, bool) {
	for _, fc := range filterCodes {
		if strings.Contains(upper, " "+fc.code+" ") {
			return fc.typ, true
		}
	}
	return "", false
}
