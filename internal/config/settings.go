package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Source describes one measurement database folder under the AutoEQ
// results root.
type Source struct {
	// Folder is the directory name under the results root, matching
	// the AutoEQ repository layout case-sensitively.
	Folder string `json:"folder" yaml:"folder"`

	// Name is the normalized source name written into catalog entries.
	Name string `json:"name" yaml:"name"`

	// Priority ranks the source; lower wins when the same headphone
	// appears in several sources.
	Priority int `json:"priority" yaml:"priority"`
}

// Settings holds all configuration options.
type Settings struct {
	// ProfileFileSuffix is appended to the headphone folder name to
	// form the expected export file name.
	ProfileFileSuffix string `json:"profile_file_suffix"`

	// MaxConcurrentSources limits how many source directories are
	// scanned in parallel. 1 gives a fully sequential walk.
	MaxConcurrentSources int `json:"max_concurrent_sources"`

	// Sources is the ordered source table. Order is the tie-break for
	// equal-priority collisions, so it is part of the configuration.
	Sources []Source `json:"sources"`

	// Manufacturers is the ordered list of known manufacturer names
	// used to split folder names; first match wins.
	Manufacturers []string `json:"manufacturers"`
}

// DefaultSources returns the built-in source table, ordered.
//
// Folder names must match the AutoEQ repository exactly. Priorities
// reflect measurement quality: oratory1990's GRAS rig first, then
// crinacle, then the review-site rigs.
func DefaultSources() []Source {
	return []Source{
		{Folder: "oratory1990", Name: "oratory1990", Priority: 1},
		{Folder: "crinacle", Name: "crinacle", Priority: 2},
		{Folder: "Rtings", Name: "rtings", Priority: 3},
		{Folder: "Innerfidelity", Name: "innerfidelity", Priority: 3},
		{Folder: "Headphone.com Legacy", Name: "headphone.com", Priority: 4},
	}
}

// DefaultManufacturers returns the built-in ordered manufacturer list.
//
// Multi-word names must appear here or the fallback first-space split
// would cut them apart ("Dan Clark Audio" → "Dan").
func DefaultManufacturers() []string {
	return []string{
		"AKG", "Audio-Technica", "Audeze", "Bang & Olufsen", "Beats", "Beyerdynamic",
		"Bose", "Campfire Audio", "Dan Clark Audio", "Denon", "FiiO", "Final",
		"Focal", "Grado", "HarmonicDyne", "HIFIMAN", "JBL", "Koss", "Massdrop",
		"Meze", "Moondrop", "Philips", "Pioneer", "Sennheiser", "Shure", "Sony",
		"SteelSeries", "STAX", "Tin HiFi", "V-MODA", "ZMF", "64 Audio", "7Hz",
		"Anker", "Apple", "AFUL", "BLON", "CCA", "Dunu", "Empire Ears", "Etymotic",
		"FatFreq", "Hidizs", "HiBy", "iBasso", "JVC", "KZ", "Letshuoer", "Linsoul",
		"Noble Audio", "QKZ", "Samsung", "See Audio", "Simgot", "SoftEars",
		"Tangzu", "Thieaudio", "Tinhifi", "Tripowin", "TRN", "Truthear",
		"Unique Melody", "Westone", "Yanyin", "BGVP", "CCZ",
	}
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ProfileFileSuffix:    " ParametricEQ.txt",
		MaxConcurrentSources: 4,
		Sources:              DefaultSources(),
		Manufacturers:        DefaultManufacturers(),
	}
}

// Load reads settings from a JSON file.
//
// A missing file yields the defaults; any other read or decode failure
// is an error. Fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
