// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render composes a layout plan into the output PDF. Source pages
// are imported as templates and drawn scaled, centered, and rotated into
// their slot regions; blank slots are simply not drawn.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/pdiddy/pocketmod/pkg/types"
)

// A4 dimensions in points, used when a page carries no usable media box.
const (
	fallbackW = 595.28
	fallbackH = 841.89
)

// Renderer composes layout plans into PDF documents. One renderer serves
// one run; the importer caches parsed source files across sheets.
type Renderer struct {
	importer *gofpdi.Importer
}

// New returns a renderer with a fresh template importer.
func New() *Renderer {
	return &Renderer{importer: gofpdi.NewImporter()}
}

// Render writes the plan's sheets to w as a single PDF document, one
// landscape page of the plan's sheet size per sheet, placements in slot
// order.
func (r *Renderer) Render(plan types.Plan, w io.Writer) error {
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	size := gofpdf.SizeType{Wd: plan.Geometry.SheetW, Ht: plan.Geometry.SheetH}
	for _, sheet := range plan.Sheets {
		pdf.AddPageFormat("L", size)
		for _, pl := range sheet.Placements {
			if pl.Page == nil {
				continue
			}
			r.place(pdf, pl)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("render: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// RenderFile renders the plan and saves it to path.
func (r *Renderer) RenderFile(plan types.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()
	return r.Render(plan, f)
}

// place imports the placement's source page and draws it into the slot
// region: scaled to fit the panel with aspect preserved, centered, then
// rotated about the panel center.
func (r *Renderer) place(pdf *gofpdf.Fpdf, pl types.Placement) {
	tpl := r.importer.ImportPage(pdf, pl.Page.File, pl.Page.PageNum, "/MediaBox")

	srcW, srcH := pl.Page.Width, pl.Page.Height
	if srcW <= 0 || srcH <= 0 {
		srcW, srcH = fallbackW, fallbackH
	}

	// Fit against the panel as the content will stand after rotation.
	effW, effH := srcW, srcH
	if pl.Rotation == types.Rotate90 || pl.Rotation == types.Rotate270 {
		effW, effH = srcH, srcW
	}
	scale := min(pl.Region.W/effW, pl.Region.H/effH)
	drawW, drawH := srcW*scale, srcH*scale

	cx := pl.Region.X + pl.Region.W/2
	cy := pl.Region.Y + pl.Region.H/2
	x := cx - drawW/2
	y := cy - drawH/2

	if pl.Rotation == types.Rotate0 {
		r.importer.UseImportedTemplate(pdf, tpl, x, y, drawW, drawH)
		return
	}

	pdf.TransformBegin()
	pdf.TransformRotate(float64(pl.Rotation), cx, cy)
	r.importer.UseImportedTemplate(pdf, tpl, x, y, drawW, drawH)
	pdf.TransformEnd()
}
