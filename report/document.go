// report/document.go
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pranav244872/fitscope/analysis"
	"github.com/pranav244872/fitscope/torre"
)

////////////////////////////////////////////////////////////////////////
// Report document assembly
////////////////////////////////////////////////////////////////////////

// reportTitle names the document; it also appears in every page footer.
const reportTitle = "Candidate Fit Report"

// maxFilenameTitle bounds the job-title portion of the generated filename.
const maxFilenameTitle = 40

// scoreColor maps the overall fit score to its badge color. Free-text scores
// outside the known set fall back to the muted gray.
func scoreColor(score string) RGB {
	switch score {
	case "Strong Match":
		return colorSkills
	case "Good Match":
		return colorRecs
	case "Partial Match":
		return colorGaps
	case "Needs Development":
		return colorConcerns
	default:
		return colorMuted
	}
}

// Build lays out the full report for one finished analysis. Sections whose
// backing data is absent are skipped entirely; no placeholder is ever drawn.
// The returned Document is final: pages, footers, and filename are all set.
func Build(fit *analysis.FitAnalysis, generatedAt time.Time) *Document {
	b := newBuilder()
	result := fit.Result

	// Header block: title and generation date.
	b.textBlock(reportTitle, titleSize, true, colorHeading, 0)
	b.gap(2)
	b.textBlock("Generated on "+generatedAt.Format("January 2, 2006"), smallSize, false, colorMuted, 0)
	b.gap(sectionGap)

	// Candidate identity block.
	if name := fit.Genome.PersonName(); name != "" {
		b.textBlock(name, sectionSize, true, colorHeading, 0)
	}
	if headline := fit.Genome.Headline(); headline != "" {
		b.textBlock(headline, bodySize, false, colorMuted, 0)
	}
	b.gap(paragraphGap)

	// Job identity block.
	if fit.Job != nil {
		if fit.Job.Objective != "" {
			b.keyValue("Position", fit.Job.Objective)
		}
		if org := fit.Job.OrganizationName(); org != "" {
			b.keyValue("Organization", org)
		}
	}
	b.gap(sectionGap)

	if result != nil {
		// Overall score badge.
		if result.OverallFitScore != "" {
			b.badge("Overall Fit Score: "+result.OverallFitScore, scoreColor(result.OverallFitScore))
			b.gap(paragraphGap)
		}

		// Job summary.
		if result.JobSummary != "" {
			b.sectionTitle("Job Summary", colorHeading)
			b.paragraph(result.JobSummary)
			b.gap(paragraphGap)
		}

		// The three scored list sections.
		bulletSection(b, "Matching Skills & Strengths", result.MatchingSkillsAndStrengths, colorSkills)
		bulletSection(b, "Areas for Development", result.AreasForDevelopment, colorGaps)
		bulletSection(b, "Recommendations", result.Recommendations, colorRecs)

		// Career trajectory block.
		if ct := result.CareerTrajectory; ct != nil && (ct.Summary != "" || len(ct.GrowthIndicators) > 0 || ct.AlignmentWithRole != "") {
			b.sectionTitle("Career Trajectory", colorGrowth)
			b.paragraph(ct.Summary)
			b.bulletList(ct.GrowthIndicators, colorGrowth)
			b.keyValue("Alignment with Role", ct.AlignmentWithRole)
			b.gap(sectionGap)
		}

		// Location and work style block.
		if lw := result.LocationAndWorkStyle; lw != nil && (lw.LocationCompatibility != "" || lw.RemoteWorkAlignment != "" || lw.CommitmentLevelMatch != "" || len(lw.PotentialConcerns) > 0) {
			b.sectionTitle("Location & Work Style", colorConcerns)
			b.keyValue("Location Compatibility", lw.LocationCompatibility)
			b.keyValue("Remote Work Alignment", lw.RemoteWorkAlignment)
			b.keyValue("Commitment Level Match", lw.CommitmentLevelMatch)
			if len(lw.PotentialConcerns) > 0 {
				b.gap(paragraphGap)
				b.bulletList(lw.PotentialConcerns, colorConcerns)
			}
			b.gap(sectionGap)
		}

		// Professional credibility block.
		if pc := result.ProfessionalCredibility; pc != nil && (pc.ProfileQuality != "" || len(pc.ProfessionalPresence) > 0 || len(pc.CredibilityIndicators) > 0) {
			b.sectionTitle("Professional Credibility", colorPresence)
			b.keyValue("Profile Quality", pc.ProfileQuality)
			if len(pc.ProfessionalPresence) > 0 {
				b.gap(paragraphGap)
				b.bulletList(pc.ProfessionalPresence, colorPresence)
			}
			b.bulletList(pc.CredibilityIndicators, colorPresence)
			b.gap(sectionGap)
		}
	}

	doc := &Document{
		Title:    reportTitle,
		Filename: Filename(fit.Genome, fit.Job),
		Pages:    b.pages,
	}
	stampFooters(doc)
	return doc
}

// bulletSection draws a titled bullet list, or nothing when the list is
// empty. Title and list are measured as one unit, so a section that no longer
// fits the current page starts whole on the next one instead of stranding its
// heading at a page bottom.
func bulletSection(b *builder, title string, items []string, color RGB) {
	if len(items) == 0 {
		return
	}
	b.ensure(lineHeight + paragraphGap + measureBullets(items) + listGap)
	b.sectionTitle(title, color)
	b.bulletList(items, color)
	b.gap(paragraphGap)
}

// stampFooters runs the second pass: the total page count is only known once
// the content pass is done, so footers cannot be drawn inline.
func stampFooters(doc *Document) {
	total := len(doc.Pages)
	for i, page := range doc.Pages {
		text := fmt.Sprintf("Page %d of %d • %s", i+1, total, doc.Title)
		x := (pageWidth - textWidth(text, smallSize)) / 2
		page.Ops = append(page.Ops, TextOp{
			X:     x,
			Y:     pageHeight - margin + lineHeight,
			Text:  text,
			Size:  smallSize,
			Bold:  false,
			Color: colorMuted,
		})
	}
}

////////////////////////////////////////////////////////////////////////
// Artifact naming
////////////////////////////////////////////////////////////////////////

// Filename derives the report's file name from the candidate's name and the
// job title: whitespace runs collapse to underscores and the title portion is
// truncated so one verbose posting cannot blow up the name.
func Filename(genome *torre.GenomeRecord, job *torre.JobRecord) string {
	name := genome.PersonName()
	if name == "" {
		name = "Candidate"
	}

	title := ""
	if job != nil {
		title = job.Objective
	}
	if title == "" {
		title = "Role"
	}
	if runes := []rune(title); len(runes) > maxFilenameTitle {
		title = string(runes[:maxFilenameTitle])
	}

	collapse := func(s string) string {
		return strings.Join(strings.Fields(s), "_")
	}
	return fmt.Sprintf("Fit_Report_%s_%s.pdf", collapse(name), collapse(title))
}
