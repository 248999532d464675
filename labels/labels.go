// labels/labels.go
package labels

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

////////////////////////////////////////////////////////////////////////

// The upstream platform encodes job type, skill proficiency, and language
// fluency as short lowercase codes. Each map below translates a code into the
// label the dashboard and the PDF report display. Unknown codes fall back to a
// title-cased rendering of the raw code, so a new upstream value degrades into
// something readable instead of leaking an internal identifier.

// We use cases.Title with english as the base language for Unicode-safe casing.
var caser = cases.Title(language.English)

var jobTypes = map[string]string{
	"full-time-employment": "Full-time",
	"part-time-employment": "Part-time",
	"contractor":           "Contractor",
	"freelance":            "Freelance",
	"internship":           "Internship",
	"flexible-jobs":        "Flexible",
}

var proficiencies = map[string]string{
	"novice":           "Novice",
	"beginner":         "Beginner",
	"proficient":       "Proficient",
	"expert":           "Expert",
	"master":           "Master",
	"no-experience-interested": "Interested",
}

var fluencies = map[string]string{
	"reading":              "Basic (reading)",
	"conversational":       "Conversational",
	"fully-fluent":         "Fluent",
	"native-or-fully-fluent": "Native or fully fluent",
}

////////////////////////////////////////////////////////////////////////

// JobType returns the display label for an upstream commitment/type code.
func JobType(code string) string {
	return lookup(jobTypes, code)
}

// Proficiency returns the display label for a skill proficiency code.
func Proficiency(code string) string {
	return lookup(proficiencies, code)
}

// Fluency returns the display label for a language fluency code.
func Fluency(code string) string {
	return lookup(fluencies, code)
}

// lookup resolves code against one of the tables above. The fallback rule is
// shared by every concept: title-case the raw code.
func lookup(table map[string]string, code string) string {
	if code == "" {
		return ""
	}
	key := strings.ToLower(strings.TrimSpace(code))
	if label, ok := table[key]; ok {
		return label
	}
	return Titleize(key)
}

// Titleize turns a lowercase dash-separated platform code into a display
// string ("career-growth" -> "Career Growth"). It is the shared fallback for
// every lookup above and is also used directly for codes that have no table,
// like the titled detail blocks of a job posting.
func Titleize(code string) string {
	return caser.String(strings.ReplaceAll(strings.ToLower(code), "-", " "))
}
