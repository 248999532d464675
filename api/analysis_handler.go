// api/analysis_handler.go
package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranav244872/fitscope/analysis"
	"github.com/pranav244872/fitscope/llm"
	"github.com/pranav244872/fitscope/report"
	"github.com/pranav244872/fitscope/torre"
)

////////////////////////////////////////////////////////////////////////
// Fit analysis endpoints
////////////////////////////////////////////////////////////////////////

// analyzeFitRequest names the job and the candidate to analyze.
type analyzeFitRequest struct {
	JobID    string `json:"jobId" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// analyzeFitResponse echoes the two identities alongside the structured
// analysis so the frontend doesn't need extra fetches to label the result.
type analyzeFitResponse struct {
	Job       jobIdentity      `json:"job"`
	Candidate candidateIdentity `json:"candidate"`
	Analysis  *analysis.Result `json:"analysis"`
}

type jobIdentity struct {
	ID           string `json:"id,omitempty"`
	Objective    string `json:"objective,omitempty"`
	Organization string `json:"organization,omitempty"`
}

type candidateIdentity struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
}

// analyzeFit runs one full analysis cycle and returns the structured result.
func (server *Server) analyzeFit(ctx *gin.Context) {
	var req analyzeFitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	fit, ok := server.runAnalysis(ctx, req)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, analyzeFitResponse{
		Job: jobIdentity{
			ID:           fit.Job.ID,
			Objective:    fit.Job.Objective,
			Organization: fit.Job.OrganizationName(),
		},
		Candidate: candidateIdentity{
			Username: req.Username,
			Name:     fit.Genome.PersonName(),
			Headline: fit.Genome.Headline(),
		},
		Analysis: fit.Result,
	})
}

// analyzeFitReport runs the same cycle and returns the paginated PDF report.
func (server *Server) analyzeFitReport(ctx *gin.Context) {
	var req analyzeFitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	fit, ok := server.runAnalysis(ctx, req)
	if !ok {
		return
	}

	doc := report.Build(fit, time.Now())
	pdfBytes, err := report.RenderPDF(doc)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// runAnalysis executes the analyzer cycle and maps its failure modes onto
// HTTP. It reports whether the caller may proceed; on false the response has
// already been written.
func (server *Server) runAnalysis(ctx *gin.Context, req analyzeFitRequest) (*analysis.FitAnalysis, bool) {
	fit, err := server.analyzer.Analyze(ctx, req.JobID, req.Username)
	if err == nil {
		return fit, true
	}

	log.Printf("analysis of job %s for %s failed: %v (request %s)",
		req.JobID, req.Username, err, ctx.GetString(requestIDContextKey))

	// Unparseable model output is surfaced as a generic analysis failure; the
	// raw text stays in the server log only.
	var unparseable *analysis.UnparseableResponseError
	if errors.As(err, &unparseable) {
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error": "analysis failed: the model did not return a readable result, please try again",
		})
		return nil, false
	}

	if errors.Is(err, llm.ErrMissingAPIKey) {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "GEMINI_API_KEY is not set. Configure the text-generation credential and restart the server.",
		})
		return nil, false
	}

	var upstream *torre.UpstreamError
	if errors.As(err, &upstream) {
		ctx.JSON(upstream.StatusCode, errorResponse(upstream))
		return nil, false
	}

	ctx.JSON(http.StatusInternalServerError, errorResponse(err))
	return nil, false
}
