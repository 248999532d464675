// report/pdf.go
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

////////////////////////////////////////////////////////////////////////
// PDF backend
////////////////////////////////////////////////////////////////////////

// baselineFactor converts a line-box top into a text baseline: the baseline
// sits roughly 80% of the font size below the top of the box.
const baselineFactor = 0.8

// RenderPDF executes a finalized Document's draw instructions against gofpdf
// and returns the PDF bytes. The layout already did all measuring and page
// breaking, so the backend disables auto page breaks and draws verbatim.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch o := op.(type) {
			case TextOp:
				style := ""
				if o.Bold {
					style = "B"
				}
				pdf.SetFont("Helvetica", style, o.Size)
				pdf.SetTextColor(o.Color.R, o.Color.G, o.Color.B)
				pdf.Text(o.X, o.Y+o.Size*baselineFactor, o.Text)
			case RectOp:
				pdf.SetFillColor(o.Color.R, o.Color.G, o.Color.B)
				if o.Radius > 0 {
					pdf.RoundedRect(o.X, o.Y, o.W, o.H, o.Radius, "1234", "F")
				} else {
					pdf.Rect(o.X, o.Y, o.W, o.H, "F")
				}
			case CircleOp:
				pdf.SetFillColor(o.Color.R, o.Color.G, o.Color.B)
				pdf.Circle(o.X, o.Y, o.R, "F")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
