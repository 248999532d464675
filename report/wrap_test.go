// report/wrap_test.go
package report

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		width     float64
		wantLines int
	}{
		{"Empty Input Wraps To Nothing", "", 200, 0},
		{"Whitespace Only Wraps To Nothing", "   \n\t ", 200, 0},
		{"Short Text Stays On One Line", "hello world", 200, 1},
		{"Long Text Wraps", strings.Repeat("word ", 40), 200, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := wrapText(tc.text, tc.width, bodySize)
			if len(lines) != tc.wantLines {
				t.Errorf("wrapText produced %d lines (%q), want %d", len(lines), lines, tc.wantLines)
			}
		})
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	text := strings.Repeat("several words of ordinary length ", 30)
	width := 180.0

	for _, line := range wrapText(text, width, bodySize) {
		if w := textWidth(line, bodySize); w > width {
			t.Errorf("line %q measures %.1f, exceeds width %.1f", line, w, width)
		}
	}
}

func TestWrapTextHardSplitsOverlongWords(t *testing.T) {
	// A single unbreakable run must be cut rather than produce a line wider
	// than the budget.
	text := strings.Repeat("x", 500)
	width := 150.0

	lines := wrapText(text, width, bodySize)
	if len(lines) < 2 {
		t.Fatalf("expected the run to be split, got %d line(s)", len(lines))
	}
	for _, line := range lines {
		if w := textWidth(line, bodySize); w > width {
			t.Errorf("line of %d runes measures %.1f, exceeds width %.1f", len(line), w, width)
		}
	}
}

func TestWrapTextPreservesAllWords(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa"

	joined := strings.Join(wrapText(text, 90, bodySize), " ")
	if joined != text {
		t.Errorf("wrapping lost or reordered words:\n got %q\nwant %q", joined, text)
	}
}
