// report/pdf_test.go
package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pranav244872/fitscope/analysis"
)

func TestRenderPDF(t *testing.T) {
	doc := Build(minimalFit(&analysis.Result{
		JobSummary:                 "A short summary.",
		OverallFitScore:            "Good Match",
		MatchingSkillsAndStrengths: []string{"Figma", "UX research"},
	}), testGeneratedAt)

	pdfBytes, err := RenderPDF(doc)
	require.NoError(t, err)

	// Basic PDF signature and a plausible size: the backend really executed
	// the draw instructions.
	require.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
	require.Greater(t, len(pdfBytes), 1000)
}

func TestRenderPDFMultiPage(t *testing.T) {
	items := make([]string, 100)
	for i := range items {
		items[i] = "A recommendation that takes up a full line of the report body."
	}

	doc := Build(minimalFit(&analysis.Result{Recommendations: items}), testGeneratedAt)
	require.Greater(t, len(doc.Pages), 1)

	pdfBytes, err := RenderPDF(doc)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
}
