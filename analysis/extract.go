// analysis/extract.go
package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////
// Recovering structured output from model text
////////////////////////////////////////////////////////////////////////

// UnparseableResponseError is returned when the model's reply could not be
// read as JSON, directly or via the brace-span fallback. It carries the
// original raw text for diagnostics.
type UnparseableResponseError struct {
	Raw string
}

func (e *UnparseableResponseError) Error() string {
	return fmt.Sprintf("unparseable AI response: %s", truncate(e.Raw, 200))
}

// Extract converts the raw text reply of a generation call into a Result,
// tolerating the model wrapping valid JSON in prose or markdown fences.
//
// Ordered parse strategies, short-circuiting on first success:
//  1. parse the whole text as JSON;
//  2. parse the widest brace-delimited span, from the first '{' to the last
//     '}' in the text.
//
// The widest-match span can swallow trailing non-JSON prose when the model
// appends commentary after a valid object; that case then fails strategy 2
// and is reported as unparseable rather than guessed at.
//
// Extract is pure: no I/O, no retries, deterministic for a given input.
func Extract(raw string) (*Result, error) {
	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err == nil {
		return &result, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		span := raw[start : end+1]
		var fallback Result
		if err := json.Unmarshal([]byte(span), &fallback); err == nil {
			return &fallback, nil
		}
	}

	return nil, &UnparseableResponseError{Raw: raw}
}

// truncate returns the first maxLen characters of s, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
