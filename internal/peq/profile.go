package peq

import (
	"os"
	"strings"

	"github.com/handiism/autoeq-catalog/internal/model"
)

// Parse extracts a profile from the content of a ParametricEQ export.
//
// Lines are trimmed and classified independently: preamp declarations
// overwrite the accumulated preamp (last one wins when a file declares
// several), enabled filter lines append in encountered order, and
// everything else is ignored.
//
// Parse returns nil when no usable filter band was found. A profile
// with zero bands is not actionable, so it is treated the same as a
// file that could not be read at all.
func Parse(content string) *model.Profile {
	profile := model.Profile{}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if v, ok := parsePreamp(line); ok {
			profile.Preamp = v
			continue
		}

		if f, ok := parseFilter(line); ok {
			profile.Filters = append(profile.Filters, f)
		}
	}

	if len(profile.Filters) == 0 {
		return nil
	}
	return &profile
}

// ParseFile reads and parses one ParametricEQ export.
//
// Any read failure is reported as absence rather than an error: not
// every headphone folder contains the expected file, and a missing or
// unreadable export simply means that headphone has no profile in this
// source.
func ParseFile(path string) (*model.Profile, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	profile := Parse(string(content))
	if profile == nil {
		return nil, false
	}
	return profile, true
}
