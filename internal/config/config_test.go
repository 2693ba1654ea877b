package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.ProfileFileSuffix != " ParametricEQ.txt" {
		t.Errorf("ProfileFileSuffix = %q", settings.ProfileFileSuffix)
	}
	if len(settings.Sources) != 5 {
		t.Errorf("got %d sources, want 5", len(settings.Sources))
	}
	if settings.Sources[0].Folder != "oratory1990" || settings.Sources[0].Priority != 1 {
		t.Errorf("Sources[0] = %+v, want oratory1990 at priority 1", settings.Sources[0])
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"max_concurrent_sources": 1}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.MaxConcurrentSources != 1 {
		t.Errorf("MaxConcurrentSources = %d, want 1", settings.MaxConcurrentSources)
	}
	if len(settings.Manufacturers) == 0 {
		t.Error("Manufacturers should keep the default list")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	settings := DefaultSettings()
	settings.MaxConcurrentSources = 2
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.MaxConcurrentSources != 2 {
		t.Errorf("MaxConcurrentSources = %d, want 2", loaded.MaxConcurrentSources)
	}
}

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sources.yaml")
	content := `sources:
  - folder: oratory1990
    name: oratory1990
    priority: 1
  - folder: MyRig
    name: myrig
    priority: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	if sources[1].Folder != "MyRig" || sources[1].Name != "myrig" || sources[1].Priority != 2 {
		t.Errorf("sources[1] = %+v", sources[1])
	}
}

func TestLoadSources_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSources(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing override file")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("sources: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSources(empty); err == nil {
		t.Error("expected error for empty source table")
	}

	noName := filepath.Join(dir, "noname.yaml")
	if err := os.WriteFile(noName, []byte("sources:\n  - folder: X\n    priority: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSources(noName); err == nil {
		t.Error("expected error for source without name")
	}
}
