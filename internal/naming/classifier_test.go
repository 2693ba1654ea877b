package naming

import (
	"testing"

	"github.com/handiism/autoeq-catalog/internal/config"
	"github.com/handiism/autoeq-catalog/internal/model"
)

func TestClassifier_Split(t *testing.T) {
	c := NewClassifier(config.DefaultManufacturers())

	tests := []struct {
		folder  string
		wantMfr string
		wantMdl string
	}{
		{"HIFIMAN HE400se", "HIFIMAN", "HE400se"},
		{"Sennheiser HD 600", "Sennheiser", "HD 600"},
		{"Dan Clark Audio Aeon 2", "Dan Clark Audio", "Aeon 2"},
		{"Bang & Olufsen Beoplay H9", "Bang & Olufsen", "Beoplay H9"},
		// Case-insensitive manufacturer match, original casing kept on the model.
		{"sennheiser HD 650", "Sennheiser", "HD 650"},
		// No known manufacturer: split on first space.
		{"Unknown Thing Model X", "Unknown", "Thing Model X"},
		// No space at all: whole name is the manufacturer.
		{"Standalone", "Standalone", ""},
		// Prefix match without a word boundary must not claim the name.
		{"AKGSomething", "AKGSomething", ""},
		// Exact manufacturer name: model falls back to the folder name.
		{"AKG", "AKG", "AKG"},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			mfr, mdl := c.Split(tt.folder)
			if mfr != tt.wantMfr || mdl != tt.wantMdl {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tt.folder, mfr, mdl, tt.wantMfr, tt.wantMdl)
			}
		})
	}
}

func TestDetectFormFactor(t *testing.T) {
	tests := []struct {
		folder string
		want   model.FormFactor
	}{
		{"IEM targets", model.FormFactorInEar},
		{"in-ear targets", model.FormFactorInEar},
		{"crinacle in_ear 711", model.FormFactorInEar},
		{"Earbud targets", model.FormFactorEarbud},
		{"Over-ear targets", model.FormFactorOverEar},
		{"oratory1990", model.FormFactorOverEar},
		// Ambiguous folder: in-ear keywords take priority over earbud.
		{"iem and earbud targets", model.FormFactorInEar},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			if got := DetectFormFactor(tt.folder); got != tt.want {
				t.Errorf("DetectFormFactor(%q) = %q, want %q", tt.folder, got, tt.want)
			}
		})
	}
}
