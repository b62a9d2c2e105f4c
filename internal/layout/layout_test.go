// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"reflect"
	"testing"

	"github.com/pdiddy/pocketmod/pkg/types"
)

// a4W and a4H are A4 portrait dimensions in points.
const (
	a4W = 595.28
	a4H = 841.89
)

// makePages builds n sequential portrait page refs.
func makePages(n int) []types.PageRef {
	pages := make([]types.PageRef, n)
	for i := range pages {
		pages[i] = types.PageRef{
			File:    "input.pdf",
			PageNum: i + 1,
			Index:   i,
			Width:   a4W,
			Height:  a4H,
		}
	}
	return pages
}

func portraitPlanner() *Planner {
	return NewPlanner(types.GeometryFor(a4W, a4H))
}

func TestPlanSheetCount(t *testing.T) {
	tests := []struct {
		name       string
		pages      int
		wantSheets int
	}{
		{name: "empty input", pages: 0, wantSheets: 0},
		{name: "single page", pages: 1, wantSheets: 1},
		{name: "partial group", pages: 5, wantSheets: 1},
		{name: "exact group", pages: 8, wantSheets: 1},
		{name: "one page over", pages: 9, wantSheets: 2},
		{name: "two groups partial", pages: 10, wantSheets: 2},
		{name: "two exact groups", pages: 16, wantSheets: 2},
		{name: "three groups partial", pages: 23, wantSheets: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := portraitPlanner().Plan(makePages(tt.pages))
			if got := len(plan.Sheets); got != tt.wantSheets {
				t.Errorf("sheets = %d, want %d", got, tt.wantSheets)
			}
		})
	}
}

// TestPlanCoverage checks the central invariant: every logical index
// 0..N-1 appears in exactly one slot, blanks appear only on the final
// sheet, and their count is exactly 8*ceil(N/8) - N.
func TestPlanCoverage(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 8, 9, 10, 16, 17, 23, 24, 100} {
		plan := portraitPlanner().Plan(makePages(n))

		seen := make(map[int]int)
		blanks := 0
		for si, sheet := range plan.Sheets {
			for _, pl := range sheet.Placements {
				if pl.Page == nil {
					blanks++
					if si != len(plan.Sheets)-1 {
						t.Errorf("n=%d: blank slot %d on sheet %d, blanks belong on the final sheet only", n, pl.Slot, si)
					}
					continue
				}
				seen[pl.Page.Index]++
			}
		}

		for i := 0; i < n; i++ {
			if seen[i] != 1 {
				t.Errorf("n=%d: page %d placed %d times, want exactly once", n, i, seen[i])
			}
		}
		if len(seen) != n {
			t.Errorf("n=%d: %d distinct pages placed, want %d", n, len(seen), n)
		}

		wantBlanks := len(plan.Sheets)*types.SlotsPerSheet - n
		if blanks != wantBlanks {
			t.Errorf("n=%d: %d blank slots, want %d", n, blanks, wantBlanks)
		}
	}
}

// TestPlanSlotTable pins the fold-tested slot assignment for one full
// group: top row carries pages 1-4 upright, bottom row carries the cover
// and pages 7-5 upside down.
func TestPlanSlotTable(t *testing.T) {
	plan := portraitPlanner().Plan(makePages(8))
	if len(plan.Sheets) != 1 {
		t.Fatalf("sheets = %d, want 1", len(plan.Sheets))
	}

	want := []struct {
		slot     int
		index    int
		rotation types.Rotation
	}{
		{slot: 0, index: 1, rotation: types.Rotate0},
		{slot: 1, index: 2, rotation: types.Rotate0},
		{slot: 2, index: 3, rotation: types.Rotate0},
		{slot: 3, index: 4, rotation: types.Rotate0},
		{slot: 4, index: 0, rotation: types.Rotate180},
		{slot: 5, index: 7, rotation: types.Rotate180},
		{slot: 6, index: 6, rotation: types.Rotate180},
		{slot: 7, index: 5, rotation: types.Rotate180},
	}

	for _, w := range want {
		pl := plan.Sheets[0].Placements[w.slot]
		if pl.Page == nil {
			t.Fatalf("slot %d: blank, want page %d", w.slot, w.index)
		}
		if pl.Page.Index != w.index {
			t.Errorf("slot %d: page %d, want %d", w.slot, pl.Page.Index, w.index)
		}
		if pl.Rotation != w.rotation {
			t.Errorf("slot %d: rotation %d, want %d", w.slot, pl.Rotation, w.rotation)
		}
	}
}

// TestPlanSecondGroup checks that the table repeats per group with the
// global index shifted by 8: the N=10 scenario puts pages 8 and 9 on
// sheet 1 in their table-designated slots.
func TestPlanSecondGroup(t *testing.T) {
	plan := portraitPlanner().Plan(makePages(10))
	if len(plan.Sheets) != 2 {
		t.Fatalf("sheets = %d, want 2", len(plan.Sheets))
	}

	second := plan.Sheets[1]

	// Offset 0 sits in slot 4 (bottom-left), offset 1 in slot 0 (top-left).
	if pl := second.Placements[4]; pl.Page == nil || pl.Page.Index != 8 {
		t.Errorf("sheet 1 slot 4 = %+v, want page 8", pl.Page)
	}
	if pl := second.Placements[0]; pl.Page == nil || pl.Page.Index != 9 {
		t.Errorf("sheet 1 slot 0 = %+v, want page 9", pl.Page)
	}

	bound := 0
	for _, pl := range second.Placements {
		if pl.Page != nil {
			bound++
		}
	}
	if bound != 2 {
		t.Errorf("sheet 1 has %d bound slots, want 2", bound)
	}
}

func TestPlanDeterminism(t *testing.T) {
	pages := makePages(13)
	a := portraitPlanner().Plan(pages)
	b := portraitPlanner().Plan(pages)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input produced different plans")
	}
}

func TestPlanGeometry(t *testing.T) {
	geom := types.GeometryFor(a4W, a4H)

	if geom.SheetW != a4H || geom.SheetH != a4W {
		t.Errorf("sheet = %gx%g, want input turned landscape %gx%g", geom.SheetW, geom.SheetH, a4H, a4W)
	}
	if geom.CellW != a4H/4 || geom.CellH != a4W/2 {
		t.Errorf("cell = %gx%g, want %gx%g", geom.CellW, geom.CellH, a4H/4, a4W/2)
	}
	if geom.LandscapeInput {
		t.Error("portrait input flagged as landscape")
	}

	// Slot regions tile the sheet without overlap: the 4x2 grid.
	plan := NewPlanner(geom).Plan(makePages(8))
	for _, pl := range plan.Sheets[0].Placements {
		if pl.Region.X < 0 || pl.Region.X+pl.Region.W > geom.SheetW+1e-9 {
			t.Errorf("slot %d region %+v exceeds sheet width %g", pl.Slot, pl.Region, geom.SheetW)
		}
		if pl.Region.Y < 0 || pl.Region.Y+pl.Region.H > geom.SheetH+1e-9 {
			t.Errorf("slot %d region %+v exceeds sheet height %g", pl.Slot, pl.Region, geom.SheetH)
		}
	}
}

// TestPlanLandscapeInput checks the quarter-turn variant: landscape source
// pages get 90/270 in place of 0/180, with the slot assignment unchanged.
func TestPlanLandscapeInput(t *testing.T) {
	planner := NewPlanner(types.GeometryFor(a4H, a4W))

	pages := makePages(8)
	for i := range pages {
		pages[i].Width, pages[i].Height = a4H, a4W
	}
	plan := planner.Plan(pages)

	for _, pl := range plan.Sheets[0].Placements {
		switch pl.Slot {
		case 0, 1, 2, 3:
			if pl.Rotation != types.Rotate90 {
				t.Errorf("slot %d: rotation %d, want 90", pl.Slot, pl.Rotation)
			}
		default:
			if pl.Rotation != types.Rotate270 {
				t.Errorf("slot %d: rotation %d, want 270", pl.Slot, pl.Rotation)
			}
		}
	}
}

// TestPlanFoldOrder simulates the fold-and-read check: walking the booklet
// in fold-reveal order must visit logical pages strictly ascending. With
// this table the reveal order per sheet is cover (slot 4), then the top
// row left to right (slots 0-3), then the bottom row right to left
// (slots 7-5).
func TestPlanFoldOrder(t *testing.T) {
	revealOrder := []int{4, 0, 1, 2, 3, 7, 6, 5}

	plan := portraitPlanner().Plan(makePages(16))

	next := 0
	for _, sheet := range plan.Sheets {
		for _, slot := range revealOrder {
			pl := sheet.Placements[slot]
			if pl.Page == nil {
				continue
			}
			if pl.Page.Index != next {
				t.Fatalf("sheet %d slot %d: page %d, want %d", sheet.Number, slot, pl.Page.Index, next)
			}
			next++
		}
	}
	if next != 16 {
		t.Fatalf("visited %d pages, want 16", next)
	}
}
