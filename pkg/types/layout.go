// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the pocketmod pipeline:
// logical pages, sheet geometry, layout plans, and stage configuration.
package types

// SlotsPerSheet is the number of panels a single folded sheet yields.
// The PocketMod fold always produces eight; it is a property of the fold,
// not a tunable.
const SlotsPerSheet = 8

// Rotation is a content rotation in degrees, counterclockwise in PDF
// user space. Only quarter turns occur in a PocketMod layout.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// PageRef identifies one logical page of the concatenated input sequence.
// Index is the 0-based position across all input files; PageNum is the
// 1-based page number within File, which is what the PDF importer wants.
type PageRef struct {
	File    string  `json:"file" yaml:"file"`
	PageNum int     `json:"page_num" yaml:"page_num"`
	Index   int     `json:"index" yaml:"index"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
}

// Rect is a region on an output sheet, in points, top-left origin.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Placement binds one physical slot on a sheet to a logical page. A nil
// Page means the slot is left blank (only trailing slots of the final
// sheet can be blank).
type Placement struct {
	Slot     int      `json:"slot" yaml:"slot"`
	Region   Rect     `json:"region" yaml:"region"`
	Rotation Rotation `json:"rotation" yaml:"rotation"`
	Page     *PageRef `json:"page,omitempty" yaml:"page,omitempty"`
}

// Sheet is one physical output page carrying up to eight placed sub-pages,
// in slot order.
type Sheet struct {
	Number     int                      `json:"number" yaml:"number"`
	Placements [SlotsPerSheet]Placement `json:"placements" yaml:"placements"`
}

// Geometry describes the fixed output sheet and its 4x2 panel grid. It is
// derived once per run from the first input page and shared by every sheet.
type Geometry struct {
	// SheetW and SheetH are the output page dimensions in points. The
	// output sheet is always landscape: the input page size turned on
	// its side.
	SheetW float64 `json:"sheet_w" yaml:"sheet_w"`
	SheetH float64 `json:"sheet_h" yaml:"sheet_h"`

	// CellW and CellH are the panel dimensions: a quarter of the long
	// side by half of the short side.
	CellW float64 `json:"cell_w" yaml:"cell_w"`
	CellH float64 `json:"cell_h" yaml:"cell_h"`

	// LandscapeInput records whether the source pages are landscape,
	// which adds a quarter turn to every placement.
	LandscapeInput bool `json:"landscape_input" yaml:"landscape_input"`
}

// GeometryFor derives the sheet geometry from one source page's dimensions
// in points.
func GeometryFor(pageW, pageH float64) Geometry {
	long, short := pageW, pageH
	if long < short {
		long, short = short, long
	}
	return Geometry{
		SheetW:         long,
		SheetH:         short,
		CellW:          long / 4,
		CellH:          short / 2,
		LandscapeInput: pageW > pageH,
	}
}

// SlotRect returns the region of the slot at the given grid position.
// Slots are row-major: row 0 is the top row, columns run left to right.
func (g Geometry) SlotRect(col, row int) Rect {
	return Rect{
		X: float64(col) * g.CellW,
		Y: float64(row) * g.CellH,
		W: g.CellW,
		H: g.CellH,
	}
}

// Plan is the full layout for one run: ceil(N/8) sheets sharing one
// geometry. It is immutable once computed.
type Plan struct {
	Geometry Geometry `json:"geometry" yaml:"geometry"`
	Sheets   []Sheet  `json:"sheets" yaml:"sheets"`
}

// PageCount returns the number of non-blank placements across the plan.
func (p Plan) PageCount() int {
	n := 0
	for _, s := range p.Sheets {
		for _, pl := range s.Placements {
			if pl.Page != nil {
				n++
			}
		}
	}
	return n
}
