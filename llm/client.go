// llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

////////////////////////////////////////////////////////////////////////
// Interface and errors
////////////////////////////////////////////////////////////////////////

// ErrMissingAPIKey is returned when a generation is attempted without the
// service credential configured. It is the one distinguished, user-visible
// configuration error: handlers translate it into a "configure the key"
// message instead of a generic failure.
var ErrMissingAPIKey = errors.New("text-generation API key is not configured")

// GenerationRequest is one prompt sent to the text-generation service.
// Model, when set, overrides the client's default for this call only.
type GenerationRequest struct {
	Prompt       string
	SystemPrompt string
	Model        string
}

// Usage reports the token accounting the service returned, when it did.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// GenerationResult is the text output of one generation call plus the
// service's own metadata about it.
type GenerationResult struct {
	Text         string
	Usage        *Usage
	FinishReason string
}

// Anything with a Generate method can act as a Client.
// Client defines an interface for making text-generation calls.
type Client interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

////////////////////////////////////////////////////////////////////////
// Gemini implementation
////////////////////////////////////////////////////////////////////////

// geminiPart / geminiContent build the request payload for the
// generateContent REST endpoint.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

// geminiResponse defines the structure of the JSON response we expect from
// the Gemini API. We only map the fields we need.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// GeminiClient implements Client against the Gemini REST API.
type GeminiClient struct {
	apiKey       string
	baseURL      string // e.g. https://generativelanguage.googleapis.com/v1beta/models
	defaultModel string
	client       *http.Client
}

// NewGeminiClient builds a GeminiClient. An empty apiKey is allowed at
// construction time; Generate reports ErrMissingAPIKey before touching the
// network, so the server can boot without a key and fail only the requests
// that need one.
func NewGeminiClient(apiKey, baseURL, defaultModel string, httpClient *http.Client) *GeminiClient {
	return &GeminiClient{
		apiKey:       apiKey,
		baseURL:      baseURL,
		defaultModel: defaultModel,
		client:       httpClient,
	}
}

// Generate implements the Client interface using the Gemini API.
// It sends the prompt (and optional system instruction) to the model and
// returns the first candidate's text along with usage and finish reason.
func (g *GeminiClient) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := req.Model
	if model == "" {
		model = g.defaultModel
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.SystemPrompt != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	u := fmt.Sprintf("%s/%s:generateContent", g.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation API returned status %s: %s", resp.Status, string(respBody))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal api response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("unexpected generation response format: no content found")
	}

	candidate := apiResp.Candidates[0]
	var sb bytes.Buffer
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}

	result := &GenerationResult{
		Text:         sb.String(),
		FinishReason: candidate.FinishReason,
	}
	if apiResp.UsageMetadata != nil {
		result.Usage = &Usage{
			PromptTokens:     apiResp.UsageMetadata.PromptTokenCount,
			CompletionTokens: apiResp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      apiResp.UsageMetadata.TotalTokenCount,
		}
	}
	return result, nil
}
