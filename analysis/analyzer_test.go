// analysis/analyzer_test.go
package analysis_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pranav244872/fitscope/analysis"
	"github.com/pranav244872/fitscope/llm"
	"github.com/pranav244872/fitscope/torre"
)

////////////////////////////////////////////////////////////////////////

// mockLLMClient stands in for the text-generation service so analyzer tests
// control exactly what "the model" replies with.
type mockLLMClient struct {
	mockText string
	mockErr  error

	// lastRequest captures what the analyzer sent, so tests can assert on
	// prompt construction without re-testing BuildFitPrompt.
	lastRequest llm.GenerationRequest
}

func (m *mockLLMClient) Generate(ctx context.Context, req llm.GenerationRequest) (*llm.GenerationResult, error) {
	m.lastRequest = req
	if m.mockErr != nil {
		return nil, m.mockErr
	}
	return &llm.GenerationResult{Text: m.mockText, FinishReason: "STOP"}, nil
}

// newUpstreamServer serves canned job and genome records the way the real
// platform endpoints do.
func newUpstreamServer(t *testing.T, jobJSON, genomeJSON string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jobJSON))
	})
	mux.HandleFunc("/genome/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(genomeJSON))
	})
	return httptest.NewServer(mux)
}

func newTestTorreClient(base string) *torre.Client {
	return torre.NewClient(base+"/search", base+"/jobs", base+"/genome", &http.Client{})
}

////////////////////////////////////////////////////////////////////////

func TestAnalyzerAnalyze(t *testing.T) {
	jobJSON := `{"id":"j1","objective":"Senior Designer","organizations":[{"name":"Acme"}]}`
	genomeJSON := `{"person":{"name":"Jane Doe","professionalHeadline":"Product Designer"}}`

	upstream := newUpstreamServer(t, jobJSON, genomeJSON)
	defer upstream.Close()

	mockClient := &mockLLMClient{
		mockText: `{"jobSummary":"Design leadership role.","overallFitScore":"Strong Match"}`,
	}
	analyzer := analysis.NewAnalyzer(newTestTorreClient(upstream.URL), mockClient)

	fit, err := analyzer.Analyze(context.Background(), "j1", "janedoe")
	require.NoError(t, err)
	require.NotNil(t, fit)

	// The cycle returns all three pieces the report needs.
	require.Equal(t, "Senior Designer", fit.Job.Objective)
	require.Equal(t, "Jane Doe", fit.Genome.PersonName())
	require.Equal(t, "Strong Match", fit.Result.OverallFitScore)
	require.Equal(t, "Design leadership role.", fit.Result.JobSummary)

	// The prompt actually carried both records and the system instruction.
	require.Contains(t, mockClient.lastRequest.Prompt, "Senior Designer")
	require.Contains(t, mockClient.lastRequest.Prompt, "Jane Doe")
	require.Equal(t, analysis.FitSystemPrompt, mockClient.lastRequest.SystemPrompt)
}

func TestAnalyzerAnalyzeUnparseableReply(t *testing.T) {
	upstream := newUpstreamServer(t, `{"id":"j1"}`, `{"person":{"name":"Jane"}}`)
	defer upstream.Close()

	mockClient := &mockLLMClient{mockText: "sorry, I cannot help with that"}
	analyzer := analysis.NewAnalyzer(newTestTorreClient(upstream.URL), mockClient)

	fit, err := analyzer.Analyze(context.Background(), "j1", "jane")
	require.Error(t, err)
	require.Nil(t, fit)

	// The typed failure must survive the cycle so the handler can map it.
	var unparseable *analysis.UnparseableResponseError
	require.ErrorAs(t, err, &unparseable)
	require.Equal(t, "sorry, I cannot help with that", unparseable.Raw)
}

func TestAnalyzerAnalyzeGenerationFailure(t *testing.T) {
	upstream := newUpstreamServer(t, `{"id":"j1"}`, `{}`)
	defer upstream.Close()

	mockClient := &mockLLMClient{mockErr: llm.ErrMissingAPIKey}
	analyzer := analysis.NewAnalyzer(newTestTorreClient(upstream.URL), mockClient)

	_, err := analyzer.Analyze(context.Background(), "j1", "jane")
	require.Error(t, err)
	require.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestAnalyzerAnalyzeUpstreamFailure(t *testing.T) {
	// The job endpoint answers 404; the cycle must abort before generation.
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "opportunity not found", http.StatusNotFound)
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	mockClient := &mockLLMClient{mockText: "{}"}
	analyzer := analysis.NewAnalyzer(newTestTorreClient(upstream.URL), mockClient)

	_, err := analyzer.Analyze(context.Background(), "missing", "jane")
	require.Error(t, err)

	var upstreamErr *torre.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	require.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)

	// Generation never ran.
	require.Empty(t, mockClient.lastRequest.Prompt)
}
