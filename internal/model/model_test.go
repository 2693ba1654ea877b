package model

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEntry_Key(t *testing.T) {
	a := Entry{Manufacturer: "Sennheiser", Model: "HD 600"}
	b := Entry{Manufacturer: "SENNHEISER", Model: "hd 600"}
	c := Entry{Manufacturer: "Sennheiser", Model: "HD 650"}

	if a.Key() != b.Key() {
		t.Error("keys should be case-insensitive")
	}
	if a.Key() == c.Key() {
		t.Error("different models should have different keys")
	}
}

func TestNewCatalog_SortsAndStamps(t *testing.T) {
	entries := []Entry{
		{Manufacturer: "sony", Model: "WH-1000XM4"},
		{Manufacturer: "AKG", Model: "K702"},
		{Manufacturer: "AKG", Model: "K371"},
	}

	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	cat := NewCatalog(entries, now)

	if cat.Version != CatalogVersion {
		t.Errorf("Version = %d, want %d", cat.Version, CatalogVersion)
	}
	if cat.GeneratedAt != "2026-08-23T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", cat.GeneratedAt)
	}
	if cat.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", cat.EntryCount)
	}

	order := []string{cat.Entries[0].Model, cat.Entries[1].Model, cat.Entries[2].Model}
	want := []string{"K371", "K702", "WH-1000XM4"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("entry order = %v, want %v", order, want)
		}
	}
}

func TestCatalog_WriteJSONShape(t *testing.T) {
	entries := []Entry{{
		ID:           "oratory1990/Sony WH-1000XM4",
		Manufacturer: "Sony",
		Model:        "WH-1000XM4",
		Source:       "oratory1990",
		FormFactor:   FormFactorOverEar,
		Preamp:       -2.0,
		Filters:      []Filter{{Type: FilterPeaking, Freq: 105, Q: 0.7, Gain: -3.5}},
	}}

	var buf bytes.Buffer
	cat := NewCatalog(entries, time.Now())
	if err := cat.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"version": 1`,
		`"entryCount": 1`,
		`"id": "oratory1990/Sony WH-1000XM4"`,
		`"formFactor": "over-ear"`,
		`"type": "peaking"`,
		`"freq": 105`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "{\n  \"version\"") {
		t.Error("output should be pretty-printed with 2-space indent")
	}

	read, err := ReadCatalog(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadCatalog() error = %v", err)
	}
	if len(read.Entries) != 1 || read.Entries[0].ID != entries[0].ID {
		t.Errorf("round-trip lost entries: %+v", read.Entries)
	}
}
