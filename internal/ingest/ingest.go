// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest collects input PDFs and flattens them into the logical
// page sequence the layout planner consumes. A path names either a single
// PDF or a directory whose PDFs are concatenated in directory-listing
// order; aggregation is kept strictly separate from layout computation.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/pocketmod/pkg/types"
)

// Source is one input PDF together with its page inventory.
type Source struct {
	// Path is the file as given to Collect.
	Path string

	// Widths and Heights hold per-page media box dimensions in points,
	// parallel slices indexed by 0-based page position.
	Widths  []float64
	Heights []float64
}

// PageCount returns the number of pages in the source.
func (s Source) PageCount() int {
	return len(s.Widths)
}

// Landscape reports whether the source's first page is wider than tall.
func (s Source) Landscape() bool {
	return s.PageCount() > 0 && s.Widths[0] > s.Heights[0]
}

// Collect resolves path into an ordered list of sources. A .pdf file is a
// single source; a directory contributes every .pdf entry in listing
// order. Non-PDF directory entries are reported to w and skipped. A
// directory with no PDFs, or a file that is not a PDF, is an error.
func Collect(path string, w io.Writer) ([]Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	if !info.IsDir() {
		if !isPDF(path) {
			return nil, fmt.Errorf("ingest: %s is not a pdf", path)
		}
		src, err := inspectFile(path)
		if err != nil {
			return nil, err
		}
		return []Source{src}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading directory %s: %w", path, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isPDF(name) {
			fmt.Fprintf(w, "skipped: %s (not a pdf)\n", name)
			continue
		}
		src, err := inspectFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("ingest: no pdf files in %s", path)
	}
	return sources, nil
}

// Concatenate flattens sources into the global logical page sequence,
// preserving source order and assigning 0-based indices across files.
func Concatenate(sources []Source) []types.PageRef {
	var pages []types.PageRef
	for _, src := range sources {
		for i := 0; i < src.PageCount(); i++ {
			pages = append(pages, types.PageRef{
				File:    src.Path,
				PageNum: i + 1,
				Index:   len(pages),
				Width:   src.Widths[i],
				Height:  src.Heights[i],
			})
		}
	}
	return pages
}

// inspectFile validates a PDF and reads its per-page dimensions. Parse and
// validation failures surface with the file name attached; they are fatal
// to the run.
func inspectFile(path string) (Source, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return Source{}, fmt.Errorf("ingest: validating %s: %w", path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("ingest: reading page sizes of %s: %w", path, err)
	}
	if len(dims) == 0 {
		return Source{}, fmt.Errorf("ingest: %s has no pages", path)
	}

	src := Source{
		Path:    path,
		Widths:  make([]float64, len(dims)),
		Heights: make([]float64, len(dims)),
	}
	for i, d := range dims {
		src.Widths[i] = d.Width
		src.Heights[i] = d.Height
	}
	return src, nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
