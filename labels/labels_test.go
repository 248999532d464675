// labels/labels_test.go
package labels_test

import (
	"testing"

	"github.com/pranav244872/fitscope/labels"
)

func TestLookups(t *testing.T) {
	testCases := []struct {
		name   string
		lookup func(string) string
		code   string
		want   string
	}{
		{"Known Job Type", labels.JobType, "full-time-employment", "Full-time"},
		{"Job Type Is Case Insensitive", labels.JobType, "Freelance", "Freelance"},
		{"Known Proficiency", labels.Proficiency, "expert", "Expert"},
		{"Known Fluency", labels.Fluency, "fully-fluent", "Fluent"},
		{"Unknown Code Falls Back To Title Case", labels.JobType, "gig-economy-work", "Gig Economy Work"},
		{"Unknown Proficiency Falls Back", labels.Proficiency, "wizard", "Wizard"},
		{"Empty Code Stays Empty", labels.Fluency, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.lookup(tc.code); got != tc.want {
				t.Errorf("lookup(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestTitleize(t *testing.T) {
	if got := labels.Titleize("career-growth"); got != "Career Growth" {
		t.Errorf("Titleize(%q) = %q, want %q", "career-growth", got, "Career Growth")
	}
}
