package naming

import (
	"strings"

	"github.com/handiism/autoeq-catalog/internal/model"
)

// Classifier splits raw headphone folder names into manufacturer and
// model using an ordered list of known manufacturers.
//
// Example:
//
//	c := naming.NewClassifier(config.DefaultManufacturers())
//	mfr, mdl := c.Split("HIFIMAN HE400se") // "HIFIMAN", "HE400se"
type Classifier struct {
	manufacturers []string
}

// NewClassifier creates a Classifier over the given manufacturer list.
// The list order matters: the first matching manufacturer wins.
func NewClassifier(manufacturers []string) *Classifier {
	return &Classifier{manufacturers: manufacturers}
}

// Split derives (manufacturer, model) from a folder name.
//
// A known manufacturer matches case-insensitively at the start of the
// name, but only when followed by a space or when it equals the whole
// name; "AKG" must not claim a folder called "AKGSomething". When a
// manufacturer matches but nothing remains after it, the model falls
// back to the full folder name.
//
// When no known manufacturer matches, the name splits on its first
// space into (first token, remainder); a name without spaces becomes
// the manufacturer with an empty model.
func (c *Classifier) Split(folderName string) (manufacturer, model string) {
	lower := strings.ToLower(folderName)

	for _, mfr := range c.manufacturers {
		mfrLower := strings.ToLower(mfr)
		if !strings.HasPrefix(lower, mfrLower) {
			continue
		}
		if strings.HasPrefix(lower, mfrLower+" ") || lower == mfrLower {
			model = strings.TrimSpace(folderName[len(mfr):])
			if model == "" {
				model = folderName
			}
			return mfr, model
		}
	}

	if i := strings.Index(folderName, " "); i >= 0 {
		return folderName[:i], folderName[i+1:]
	}
	return folderName, ""
}

// DetectFormFactor classifies a target folder name into a form factor.
//
// Keywords are checked in fixed priority order, in-ear before earbud,
// so a folder naming both classifies as in-ear. Anything without a
// keyword is over-ear, the most common category.
func DetectFormFactor(targetFolder string) model.FormFactor {
	lower := strings.ToLower(targetFolder)
	switch {
	case strings.Contains(lower, "in-ear"),
		strings.Contains(lower, "in_ear"),
		strings.Contains(lower, "iem"):
		return model.FormFactorInEar
	case strings.Contains(lower, "earbud"):
		return model.FormFactorEarbud
	default:
		return model.FormFactorOverEar
	}
}
