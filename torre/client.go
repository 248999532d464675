// torre/client.go
package torre

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

////////////////////////////////////////////////////////////////////////
// Errors
////////////////////////////////////////////////////////////////////////

// UpstreamError is returned when any of the three upstream endpoints answers
// with a non-2xx status. The body is kept verbatim so handlers can relay the
// upstream's own message to the client. Nothing is retried.
type UpstreamError struct {
	Endpoint   string // which upstream call failed ("search", "jobs", "genome")
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s endpoint returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

////////////////////////////////////////////////////////////////////////
// Client
////////////////////////////////////////////////////////////////////////

// Default query parameters attached to every search call. The platform uses
// them to normalize compensation figures in the results.
const (
	defaultCurrency    = "USD$"
	defaultPeriodicity = "hourly"
	defaultLang        = "en"
)

// Client calls the three public job-platform endpoints. It holds no state
// beyond its configuration and is safe for concurrent use.
type Client struct {
	searchURL string
	jobsURL   string
	genomeURL string
	client    *http.Client
}

// NewClient builds a Client for the given endpoint base URLs. The caller
// supplies the *http.Client (real or a test transport).
func NewClient(searchURL, jobsURL, genomeURL string, httpClient *http.Client) *Client {
	return &Client{
		searchURL: searchURL,
		jobsURL:   jobsURL,
		genomeURL: genomeURL,
		client:    httpClient,
	}
}

////////////////////////////////////////////////////////////////////////
// Raw calls (used by the proxy handlers)
////////////////////////////////////////////////////////////////////////

// Search forwards a filter body to the search endpoint and returns the raw
// response bytes. The size query parameter controls how many results the
// upstream returns.
func (c *Client) Search(ctx context.Context, body []byte, size int) ([]byte, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint URL: %w", err)
	}
	q := u.Query()
	q.Set("size", fmt.Sprint(size))
	q.Set("currency", defaultCurrency)
	q.Set("periodicity", defaultPeriodicity)
	q.Set("lang", defaultLang)
	u.RawQuery = q.Encode()

	return c.do(ctx, "search", http.MethodPost, u.String(), body)
}

// GetJobRaw fetches the full job record for id and returns the raw bytes.
func (c *Client) GetJobRaw(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, "jobs", http.MethodGet, c.jobsURL+"/"+url.PathEscape(id), nil)
}

// GetGenomeRaw fetches the genome record for username and returns the raw bytes.
func (c *Client) GetGenomeRaw(ctx context.Context, username string) ([]byte, error) {
	return c.do(ctx, "genome", http.MethodGet, c.genomeURL+"/"+url.PathEscape(username), nil)
}

////////////////////////////////////////////////////////////////////////
// Typed calls (used by the analyzer and the report)
////////////////////////////////////////////////////////////////////////

// GetJob fetches and decodes the job record for id.
func (c *Client) GetJob(ctx context.Context, id string) (*JobRecord, error) {
	raw, err := c.GetJobRaw(ctx, id)
	if err != nil {
		return nil, err
	}
	var job JobRecord
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job record: %w", err)
	}
	return &job, nil
}

// GetGenome fetches and decodes the genome record for username.
func (c *Client) GetGenome(ctx context.Context, username string) (*GenomeRecord, error) {
	raw, err := c.GetGenomeRaw(ctx, username)
	if err != nil {
		return nil, err
	}
	var genome GenomeRecord
	if err := json.Unmarshal(raw, &genome); err != nil {
		return nil, fmt.Errorf("failed to decode genome record: %w", err)
	}
	return &genome, nil
}

////////////////////////////////////////////////////////////////////////
// Shared request plumbing
////////////////////////////////////////////////////////////////////////

// do performs one upstream call and returns the body on any 2xx status.
// Non-2xx responses become an *UpstreamError carrying the verbatim body.
func (c *Client) do(ctx context.Context, endpoint, method, u string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}
