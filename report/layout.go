// report/layout.go
package report

////////////////////////////////////////////////////////////////////////
// Page geometry and draw-instruction model
////////////////////////////////////////////////////////////////////////

// All layout constants are fixed, not user-configurable. Units are PDF points
// on an A4 portrait page.
const (
	pageWidth  = 595.28
	pageHeight = 841.89

	margin       = 48.0
	contentWidth = pageWidth - 2*margin
	lineHeight   = 14.0

	// maxBlockHeight caps what a single overflow check may demand, so a block
	// taller than one full page does not page-break forever. The block itself
	// then overruns the bottom margin; splitting it is not handled.
	maxBlockHeight = pageHeight - 2*margin

	titleSize   = 20.0
	sectionSize = 13.0
	bodySize    = 10.5
	smallSize   = 9.0

	bulletIndent = 14.0
	bulletRadius = 2.0
	listGap      = 8.0
	paragraphGap = 6.0
	sectionGap   = 14.0
	labelColumn  = 150.0
)

// RGB is a draw color.
type RGB struct {
	R, G, B int
}

// Category colors used for bullet markers, section accents, and the score
// badge.
var (
	colorHeading   = RGB{17, 24, 39}
	colorBody      = RGB{55, 65, 81}
	colorMuted     = RGB{107, 114, 128}
	colorSkills    = RGB{22, 163, 74}   // green
	colorGaps      = RGB{217, 119, 6}   // amber
	colorRecs      = RGB{37, 99, 235}   // blue
	colorGrowth    = RGB{124, 58, 237}  // purple
	colorConcerns  = RGB{234, 88, 12}   // orange
	colorPresence  = RGB{13, 148, 136}  // teal
	colorBadgeText = RGB{255, 255, 255}
)

////////////////////////////////////////////////////////////////////////

// Op is one draw instruction on a page. The layout engine only produces ops;
// executing them is the backend's job (the gofpdf renderer, or a test that
// just inspects them).
type Op interface {
	isOp()
}

// TextOp draws one already-wrapped line of text. Y is the top of the line's
// box, not the baseline; backends convert.
type TextOp struct {
	X, Y  float64
	Text  string
	Size  float64
	Bold  bool
	Color RGB
}

// RectOp draws a filled rectangle, optionally with rounded corners.
type RectOp struct {
	X, Y, W, H float64
	Radius     float64
	Color      RGB
}

// CircleOp draws a filled circle centered at (X, Y); it is the bullet marker.
type CircleOp struct {
	X, Y, R float64
	Color   RGB
}

func (TextOp) isOp()   {}
func (RectOp) isOp()   {}
func (CircleOp) isOp() {}

// Page is one fixed-size page of draw instructions.
type Page struct {
	Ops []Op
}

// Document is the finalized, paginated report.
type Document struct {
	Title    string
	Filename string
	Pages    []*Page
}

////////////////////////////////////////////////////////////////////////
// Builder
////////////////////////////////////////////////////////////////////////

// builder owns the running layout state: the pages produced so far and the
// vertical cursor on the current page. Every add operation measures the
// height it needs first and page-breaks before drawing when the block would
// cross the bottom margin, so no block starts below it.
type builder struct {
	pages []*Page
	y     float64
}

func newBuilder() *builder {
	b := &builder{}
	b.newPage()
	return b
}

func (b *builder) newPage() {
	b.pages = append(b.pages, &Page{})
	b.y = margin
}

func (b *builder) page() *Page {
	return b.pages[len(b.pages)-1]
}

// ensure starts a new page when needed points of height no longer fit above
// the bottom margin. Called before drawing, never after.
func (b *builder) ensure(needed float64) {
	if needed > maxBlockHeight {
		needed = maxBlockHeight
	}
	if b.y+needed > pageHeight-margin {
		b.newPage()
	}
}

func (b *builder) push(op Op) {
	p := b.page()
	p.Ops = append(p.Ops, op)
}

////////////////////////////////////////////////////////////////////////
// Add operations
////////////////////////////////////////////////////////////////////////

// textBlock wraps text to width, draws it at the left margin plus indent, and
// advances the cursor. Returns without drawing anything for empty text.
func (b *builder) textBlock(text string, size float64, bold bool, color RGB, indent float64) {
	if text == "" {
		return
	}
	lines := wrapText(text, contentWidth-indent, size)
	b.ensure(float64(len(lines)) * lineHeight)
	for _, line := range lines {
		b.push(TextOp{X: margin + indent, Y: b.y, Text: line, Size: size, Bold: bold, Color: color})
		b.y += lineHeight
	}
}

// paragraph is a body-size text block followed by a small gap.
func (b *builder) paragraph(text string) {
	if text == "" {
		return
	}
	b.textBlock(text, bodySize, false, colorBody, 0)
	b.y += paragraphGap
}

// sectionTitle draws a colored accent bar and the section heading, measured
// and broken as one unit so a heading never strands at a page bottom.
func (b *builder) sectionTitle(text string, color RGB) {
	b.ensure(lineHeight + sectionGap)
	b.push(RectOp{X: margin, Y: b.y + 2, W: 3, H: sectionSize, Color: color})
	b.push(TextOp{X: margin + 9, Y: b.y, Text: text, Size: sectionSize, Bold: true, Color: colorHeading})
	b.y += lineHeight + paragraphGap
}

// measureBullets returns the height a bullet list needs, excluding the
// trailing gap.
func measureBullets(items []string) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(len(wrapText(item, contentWidth-bulletIndent, bodySize))) * lineHeight
	}
	return total
}

// bulletList draws each item as an independently wrapped block preceded by a
// filled circular marker. The whole list is measured up front so a list that
// still fits a fresh page starts there instead of straddling; items of a
// list longer than a page then continue across pages item by item.
func (b *builder) bulletList(items []string, color RGB) {
	if len(items) == 0 {
		return
	}

	b.ensure(measureBullets(items) + listGap)

	for _, item := range items {
		lines := wrapText(item, contentWidth-bulletIndent, bodySize)
		b.ensure(float64(len(lines)) * lineHeight)
		b.push(CircleOp{X: margin + bulletRadius + 2, Y: b.y + lineHeight/2, R: bulletRadius, Color: color})
		for _, line := range lines {
			b.push(TextOp{X: margin + bulletIndent, Y: b.y, Text: line, Size: bodySize, Bold: false, Color: colorBody})
			b.y += lineHeight
		}
	}
	b.y += listGap
}

// keyValue draws an emphasized label in a fixed-width left column and the
// value wrapped into the remaining width. The cursor advances by whichever
// side wrapped taller.
func (b *builder) keyValue(label, value string) {
	if value == "" {
		return
	}
	labelLines := wrapText(label, labelColumn-6, bodySize)
	valueLines := wrapText(value, contentWidth-labelColumn, bodySize)

	rows := len(labelLines)
	if len(valueLines) > rows {
		rows = len(valueLines)
	}
	b.ensure(float64(rows) * lineHeight)

	y := b.y
	for _, line := range labelLines {
		b.push(TextOp{X: margin, Y: y, Text: line, Size: bodySize, Bold: true, Color: colorHeading})
		y += lineHeight
	}
	y = b.y
	for _, line := range valueLines {
		b.push(TextOp{X: margin + labelColumn, Y: y, Text: line, Size: bodySize, Bold: false, Color: colorBody})
		y += lineHeight
	}
	b.y += float64(rows) * lineHeight
}

// badge draws a filled rounded rectangle with centered bold white text.
func (b *builder) badge(text string, color RGB) {
	if text == "" {
		return
	}
	w := textWidth(text, bodySize) + 24
	if w > contentWidth {
		w = contentWidth
	}
	h := lineHeight + 8
	b.ensure(h + paragraphGap)
	b.push(RectOp{X: margin, Y: b.y, W: w, H: h, Radius: 4, Color: color})
	b.push(TextOp{X: margin + 12, Y: b.y + 4, Text: text, Size: bodySize, Bold: true, Color: colorBadgeText})
	b.y += h + paragraphGap
}

// gap advances the cursor without drawing.
func (b *builder) gap(h float64) {
	b.y += h
}
