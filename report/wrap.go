// report/wrap.go
package report

import "strings"

////////////////////////////////////////////////////////////////////////
// Deterministic text wrapping
////////////////////////////////////////////////////////////////////////

// The layout engine must be deterministic and testable without loading font
// metrics, so widths are estimated from an average glyph width per font size.
// The factor below approximates Helvetica; the PDF backend draws the
// pre-wrapped lines as-is, so a slightly pessimistic estimate only costs a
// little right margin.
const glyphWidthFactor = 0.52

// textWidth estimates the rendered width of s at the given font size.
func textWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * glyphWidthFactor
}

// maxRunes converts a width budget into a rune budget at the given size.
func maxRunes(width float64, size float64) int {
	n := int(width / (size * glyphWidthFactor))
	if n < 1 {
		n = 1
	}
	return n
}

// wrapText greedily word-wraps s to the given width. Words longer than a full
// line are hard-split so no line ever exceeds the budget. The result is never
// empty for non-empty input; empty input wraps to no lines.
func wrapText(s string, width float64, size float64) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	limit := maxRunes(width, size)
	var lines []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(s) {
		runes := []rune(word)

		// Hard-split words that cannot fit any line on their own.
		for len(runes) > limit {
			flush()
			lines = append(lines, string(runes[:limit]))
			runes = runes[limit:]
		}

		switch {
		case len(current) == 0:
			current = append(current, runes...)
		case len(current)+1+len(runes) <= limit:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = append(current, runes...)
		}
	}
	flush()

	return lines
}
