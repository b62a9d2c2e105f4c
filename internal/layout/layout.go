// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout computes PocketMod page placement: it maps a flat ordered
// sequence of logical pages onto 8-panel output sheets so that printing
// single-sided and folding per the PocketMod method yields a booklet whose
// pages read in ascending order.
//
// The slot table below is fold topology, not a design choice. A
// transcription error there silently breaks reading order without raising
// any error, so change it only with a folded sheet in hand.
package layout

import "github.com/pdiddy/pocketmod/pkg/types"

// slotEntry fixes, for one physical panel of the 4x2 landscape grid, which
// logical offset within a group of eight lands there and the base rotation
// needed so the panel reads right-side-up after folding.
type slotEntry struct {
	col, row int
	offset   int
	rotation types.Rotation
}

// slotTable is the one geometric constant of the system, identical for
// every sheet. Row 0 is the top row. The top row carries offsets 1-4
// upright; the bottom row carries the cover (offset 0) and offsets 7-5
// upside down.
var slotTable = [types.SlotsPerSheet]slotEntry{
	{col: 0, row: 0, offset: 1, rotation: types.Rotate0},
	{col: 1, row: 0, offset: 2, rotation: types.Rotate0},
	{col: 2, row: 0, offset: 3, rotation: types.Rotate0},
	{col: 3, row: 0, offset: 4, rotation: types.Rotate0},
	{col: 0, row: 1, offset: 0, rotation: types.Rotate180},
	{col: 1, row: 1, offset: 7, rotation: types.Rotate180},
	{col: 2, row: 1, offset: 6, rotation: types.Rotate180},
	{col: 3, row: 1, offset: 5, rotation: types.Rotate180},
}

// Planner maps logical pages onto output sheets. It owns an immutable
// geometry derived from the first input page; construct one per run.
type Planner struct {
	geom types.Geometry
}

// NewPlanner returns a planner for the given sheet geometry.
func NewPlanner(geom types.Geometry) *Planner {
	return &Planner{geom: geom}
}

// Geometry returns the geometry the planner was built with.
func (p *Planner) Geometry() types.Geometry {
	return p.geom
}

// Plan lays out the given pages onto ceil(N/8) sheets. Each group of up to
// eight consecutive pages occupies exactly one sheet; slots whose logical
// offset exceeds the remaining page count stay blank, which can only happen
// on the final sheet. Plan is pure and deterministic and has no failure
// modes: zero pages yield zero sheets.
func (p *Planner) Plan(pages []types.PageRef) types.Plan {
	plan := types.Plan{Geometry: p.geom}

	sheetCount := (len(pages) + types.SlotsPerSheet - 1) / types.SlotsPerSheet
	for g := 0; g < sheetCount; g++ {
		sheet := types.Sheet{Number: g}
		base := g * types.SlotsPerSheet

		for slot, entry := range slotTable {
			placement := types.Placement{
				Slot:     slot,
				Region:   p.geom.SlotRect(entry.col, entry.row),
				Rotation: p.rotate(entry.rotation),
			}
			if idx := base + entry.offset; idx < len(pages) {
				page := pages[idx]
				placement.Page = &page
			}
			sheet.Placements[slot] = placement
		}

		plan.Sheets = append(plan.Sheets, sheet)
	}

	return plan
}

// rotate adjusts a base rotation for the input orientation. Landscape
// source pages stand on their side inside the portrait panels, so every
// placement gains a quarter turn.
func (p *Planner) rotate(base types.Rotation) types.Rotation {
	if !p.geom.LandscapeInput {
		return base
	}
	return (base + types.Rotate90) % 360
}
