// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConvertConfig holds settings for one conversion run.
type ConvertConfig struct {
	// OutputPath is the output PDF path. Empty means a timestamped name
	// in the working directory.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Force allows overwriting an existing output file.
	Force bool `json:"force" yaml:"force"`
}

// JournalConfig holds settings for the run history journal.
type JournalConfig struct {
	// Path is the SQLite database file. Empty selects the default under
	// the user's data directory.
	Path string `json:"path" yaml:"path"`

	// Disabled turns off run recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// RunRecord is one journaled conversion run.
type RunRecord struct {
	ID        int64     `json:"id" yaml:"id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Input     string    `json:"input" yaml:"input"`
	Output    string    `json:"output" yaml:"output"`
	Files     int       `json:"files" yaml:"files"`
	Pages     int       `json:"pages" yaml:"pages"`
	Sheets    int       `json:"sheets" yaml:"sheets"`
}
