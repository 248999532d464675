// analysis/extract_test.go
package analysis_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pranav244872/fitscope/analysis"
)

////////////////////////////////////////////////////////////////////////
// Tests for Extract
////////////////////////////////////////////////////////////////////////

func TestExtract(t *testing.T) {
	// The model is asked for bare JSON but routinely wraps it in prose or
	// markdown fences; each case below is a shape we have actually seen.
	testCases := []struct {
		name    string
		raw     string
		want    *analysis.Result
		wantErr bool
	}{
		{
			name: "Happy Path - Bare JSON Object",
			raw:  `{"jobSummary":"A senior role.","overallFitScore":"Strong Match","matchingSkillsAndStrengths":["Go","SQL"]}`,
			want: &analysis.Result{
				JobSummary:                 "A senior role.",
				OverallFitScore:            "Strong Match",
				MatchingSkillsAndStrengths: []string{"Go", "SQL"},
			},
		},
		{
			name: "Fallback - JSON Wrapped In Prose",
			raw:  `Sure! Here is the analysis you asked for: {"jobSummary":"A role."} `,
			want: &analysis.Result{JobSummary: "A role."},
		},
		{
			name: "Fallback - Markdown Code Fence",
			raw:  "```json\n{\"overallFitScore\":\"Good Match\"}\n```",
			want: &analysis.Result{OverallFitScore: "Good Match"},
		},
		{
			name: "Fallback - Nested Braces Inside Span",
			raw:  `noise {"careerTrajectory":{"summary":"Growing fast."}} end`,
			want: &analysis.Result{
				CareerTrajectory: &analysis.CareerTrajectory{Summary: "Growing fast."},
			},
		},
		{
			name:    "Error Case - No Braces At All",
			raw:     "I am unable to produce the analysis right now.",
			wantErr: true,
		},
		{
			name:    "Error Case - Empty Input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "Error Case - Braces But Not JSON",
			raw:     "set {x} to {y}",
			wantErr: true,
		},
		{
			// Known lossy edge of the widest-match policy: the span runs from
			// the first '{' to the LAST '}', so commentary containing a brace
			// after a valid object poisons the span and the whole reply is
			// reported unparseable instead of recovering the object.
			name:    "Known Lossy Edge - Braced Prose After Valid Object",
			raw:     `{"jobSummary":"ok"} by the way {unrelated}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := analysis.Extract(tc.raw)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("Extract(%q) expected an error, got result %+v", tc.raw, got)
				}
				// The failure must be the typed one and must keep the raw
				// input for diagnostics.
				var unparseable *analysis.UnparseableResponseError
				if !errors.As(err, &unparseable) {
					t.Fatalf("Extract(%q) returned %T, want *UnparseableResponseError", tc.raw, err)
				}
				if unparseable.Raw != tc.raw {
					t.Errorf("UnparseableResponseError.Raw = %q, want the original input %q", unparseable.Raw, tc.raw)
				}
				return
			}

			if err != nil {
				t.Fatalf("Extract(%q) returned unexpected error: %v", tc.raw, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Extract(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

// Extract is pure: the same input must yield structurally equal results on
// every call.
func TestExtractIsIdempotent(t *testing.T) {
	raw := `prefix {"jobSummary":"twice","recommendations":["a","b"]} suffix`

	first, err1 := analysis.Extract(raw)
	second, err2 := analysis.Extract(raw)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two extractions of the same input differ: %+v vs %+v", first, second)
	}
}
