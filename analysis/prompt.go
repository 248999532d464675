// analysis/prompt.go
package analysis

import (
	"fmt"
	"strings"

	"github.com/pranav244872/fitscope/labels"
	"github.com/pranav244872/fitscope/torre"
)

////////////////////////////////////////////////////////////////////////
// Prompt construction
////////////////////////////////////////////////////////////////////////

// FitSystemPrompt is the system instruction sent with every fit analysis.
// It pins the output contract; the schema itself lives in the user prompt.
const FitSystemPrompt = `You are an expert technical recruiter who evaluates how well a candidate fits a specific job opening.
You base every statement strictly on the provided job posting and candidate profile. You do not invent facts.
You always answer with a single valid JSON object and nothing else: no markdown, no code fences, no commentary.`

// fitOutputSchema is the exact JSON structure the model is asked to return.
// The key names must match the Result struct tags; Extract reads them back.
const fitOutputSchema = `{
  "jobSummary": "2-3 sentence summary of the role and what the team is looking for",
  "overallFitScore": "one of: Strong Match | Good Match | Partial Match | Needs Development",
  "matchingSkillsAndStrengths": ["2-5 skills or strengths of the candidate that directly match the job"],
  "areasForDevelopment": ["2-5 gaps between the job's requirements and the candidate's profile"],
  "recommendations": ["2-5 concrete suggestions for the candidate to improve their fit"],
  "careerTrajectory": {
    "summary": "1-2 sentences on the direction of the candidate's career",
    "growthIndicators": ["signals of growth visible in the profile"],
    "alignmentWithRole": "how that trajectory aligns with this role"
  },
  "locationAndWorkStyle": {
    "locationCompatibility": "how the candidate's location fits the job's location",
    "remoteWorkAlignment": "how the candidate fits the job's remote/on-site setup",
    "commitmentLevelMatch": "how the candidate fits the job's commitment level",
    "potentialConcerns": ["location or work-style concerns, if any"]
  },
  "professionalCredibility": {
    "profileQuality": "assessment of how complete and credible the profile is",
    "professionalPresence": ["observations about the candidate's professional presence"],
    "credibilityIndicators": ["verifiable signals backing the profile up"]
  }
}`

// Caps applied when flattening upstream records into prompt text. The model
// does not need an exhaustive dump, and the detail blocks of some postings
// run to tens of kilobytes.
const (
	maxPromptStrengths   = 15
	maxPromptExperiences = 8
	maxDetailContent     = 4000
)

// BuildFitPrompt flattens the job posting and the candidate genome into the
// user prompt for a fit analysis. Absent fields are simply not mentioned.
func BuildFitPrompt(job *torre.JobRecord, genome *torre.GenomeRecord) string {
	var sb strings.Builder

	sb.WriteString("Analyze how well the candidate below fits the job below.\n\n")

	sb.WriteString("### JOB POSTING\n")
	writeJob(&sb, job)

	sb.WriteString("\n### CANDIDATE PROFILE\n")
	writeGenome(&sb, genome)

	sb.WriteString("\n### OUTPUT REQUIREMENTS\n")
	sb.WriteString("Return ONLY a single valid JSON object with exactly this structure and key names:\n")
	sb.WriteString(fitOutputSchema)
	sb.WriteString("\nIf you cannot assess a nested section, omit it entirely instead of filling it with placeholders.\n")

	return sb.String()
}

func writeJob(sb *strings.Builder, job *torre.JobRecord) {
	if job == nil {
		return
	}
	writeField(sb, "Role", job.Objective)
	writeField(sb, "Organization", job.OrganizationName())
	writeField(sb, "Tagline", job.Tagline)
	if job.Commitment != nil {
		writeField(sb, "Commitment", labels.JobType(job.Commitment.Code))
	}
	if job.Place != nil {
		switch {
		case job.Place.Anywhere:
			writeField(sb, "Location", "Remote (anywhere)")
		case job.Place.Remote:
			writeField(sb, "Location", "Remote")
		}
	}
	if job.Compensation != nil && job.Compensation.Visible && job.Compensation.Data != nil {
		d := job.Compensation.Data
		writeField(sb, "Compensation", fmt.Sprintf("%s %.0f-%.0f %s", d.Currency, d.MinAmount, d.MaxAmount, d.Periodicity))
	}
	if len(job.Strengths) > 0 {
		sb.WriteString("Required skills:\n")
		for i, s := range job.Strengths {
			if i == maxPromptStrengths {
				break
			}
			line := "- " + s.Name
			if s.Experience != "" {
				line += " (" + s.Experience + ")"
			}
			sb.WriteString(line + "\n")
		}
	}
	if len(job.Languages) > 0 {
		sb.WriteString("Required languages:\n")
		for _, l := range job.Languages {
			sb.WriteString("- " + l.Language + ": " + labels.Fluency(l.Fluency) + "\n")
		}
	}
	for _, d := range job.Details {
		if d.Content == "" {
			continue
		}
		sb.WriteString(labels.Titleize(d.Code) + ":\n")
		content := d.Content
		if len(content) > maxDetailContent {
			content = content[:maxDetailContent]
		}
		sb.WriteString(content + "\n")
	}
}

func writeGenome(sb *strings.Builder, genome *torre.GenomeRecord) {
	if genome == nil {
		return
	}
	writeField(sb, "Name", genome.PersonName())
	writeField(sb, "Headline", genome.Headline())
	if genome.Person != nil {
		writeField(sb, "Bio", genome.Person.SummaryOfBio)
		if loc, ok := genome.Person.Location["name"].(string); ok {
			writeField(sb, "Location", loc)
		}
	}
	if len(genome.Strengths) > 0 {
		sb.WriteString("Skills:\n")
		for i, s := range genome.Strengths {
			if i == maxPromptStrengths {
				break
			}
			line := "- " + s.Name
			if s.Proficiency != "" {
				line += " (" + labels.Proficiency(s.Proficiency) + ")"
			}
			if s.Recommendations > 0 {
				line += fmt.Sprintf(", %d recommendations", s.Recommendations)
			}
			sb.WriteString(line + "\n")
		}
	}
	writeExperiences(sb, "Experience", genome.Jobs)
	writeExperiences(sb, "Education", genome.Education)
	writeExperiences(sb, "Projects", genome.Projects)
	writeExperiences(sb, "Awards", genome.Awards)
	writeExperiences(sb, "Publications", genome.Publications)
	if len(genome.Languages) > 0 {
		sb.WriteString("Languages:\n")
		for _, l := range genome.Languages {
			sb.WriteString("- " + l.Language + ": " + labels.Fluency(l.Fluency) + "\n")
		}
	}
}

func writeExperiences(sb *strings.Builder, title string, entries []torre.Experience) {
	if len(entries) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	for i, e := range entries {
		if i == maxPromptExperiences {
			break
		}
		line := "- " + e.Name
		if len(e.Organizations) > 0 && e.Organizations[0].Name != "" {
			line += " at " + e.Organizations[0].Name
		}
		if e.FromYear != "" {
			line += " (" + e.FromYear + "-"
			if e.ToYear != "" {
				line += e.ToYear
			} else {
				line += "present"
			}
			line += ")"
		}
		sb.WriteString(line + "\n")
	}
}

// writeField emits "Label: value" when value is non-empty.
func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(label + ": " + value + "\n")
}
