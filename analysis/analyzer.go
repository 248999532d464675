// analysis/analyzer.go
package analysis

import (
	"context"
	"fmt"

	"github.com/pranav244872/fitscope/llm"
	"github.com/pranav244872/fitscope/torre"
)

////////////////////////////////////////////////////////////////////////
// Analysis cycle orchestration
////////////////////////////////////////////////////////////////////////

// FitAnalysis bundles everything one analysis cycle produced: the two source
// records and the structured result recovered from the model. The report
// layout consumes all three.
type FitAnalysis struct {
	Job    *torre.JobRecord
	Genome *torre.GenomeRecord
	Result *Result
}

// Analyzer runs the per-request analysis cycle: fetch the job, fetch the
// candidate genome, generate the fit narrative, recover the structured
// result. The steps run in strict sequence; a failure at any stage aborts the
// cycle, nothing is retried, and nothing partial is kept.
type Analyzer struct {
	torre *torre.Client
	llm   llm.Client
}

// NewAnalyzer wires the two collaborators the cycle needs.
func NewAnalyzer(torreClient *torre.Client, llmClient llm.Client) *Analyzer {
	return &Analyzer{
		torre: torreClient,
		llm:   llmClient,
	}
}

// Analyze runs one full cycle for the given job id and candidate username.
func (a *Analyzer) Analyze(ctx context.Context, jobID, username string) (*FitAnalysis, error) {
	// Step 1: Fetch the job posting.
	job, err := a.torre.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}

	// Step 2: Fetch the candidate's genome.
	genome, err := a.torre.GetGenome(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch genome: %w", err)
	}

	// Step 3: Ask the model for the fit narrative.
	generated, err := a.llm.Generate(ctx, llm.GenerationRequest{
		Prompt:       BuildFitPrompt(job, genome),
		SystemPrompt: FitSystemPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	// Step 4: Recover the structured result from the model text.
	result, err := Extract(generated.Text)
	if err != nil {
		return nil, err
	}

	return &FitAnalysis{
		Job:    job,
		Genome: genome,
		Result: result,
	}, nil
}
