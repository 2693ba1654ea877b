// Package config provides configuration management for the catalog
// generator.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - The built-in source priority table and manufacturer list
//   - YAML source-table overrides for AutoEQ forks
//
// # Default Settings
//
// Use DefaultSettings() to get the built-in configuration:
//
//	settings := config.DefaultSettings()
//	// oratory1990 > crinacle > rtings/innerfidelity > headphone.com
//	// 66 known manufacturers, 4 concurrent source scans
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
//
// # Source Table Overrides
//
// A YAML file can replace just the source table, keeping every other
// setting at its configured value:
//
//	sources, err := config.LoadSources("sources.yaml")
//	settings.Sources = sources
package config
