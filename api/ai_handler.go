// api/ai_handler.go
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranav244872/fitscope/llm"
)

////////////////////////////////////////////////////////////////////////
// Text-generation endpoint: POST /api/ai
////////////////////////////////////////////////////////////////////////

// generateTextRequest defines the JSON payload for a generation call.
// Only the prompt is required; the model falls back to the configured default.
type generateTextRequest struct {
	Prompt       string `json:"prompt" binding:"required"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
	Model        string `json:"model,omitempty"`
}

// generateTextResponse is the successful response shape.
type generateTextResponse struct {
	Text         string     `json:"text"`
	Usage        *llm.Usage `json:"usage,omitempty"`
	FinishReason string     `json:"finishReason,omitempty"`
}

// generateText forwards one prompt to the text-generation service and
// returns the model's text plus usage metadata.
func (server *Server) generateText(ctx *gin.Context) {
	var req generateTextRequest

	// Step 1: Bind and validate the request body. A missing prompt is a 400
	// before anything touches the network.
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 2: Run the generation.
	result, err := server.llm.Generate(ctx, llm.GenerationRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		Model:        req.Model,
	})
	if err != nil {
		// The missing credential gets its own message so the operator knows
		// this is a configuration problem, not a service outage.
		if errors.Is(err, llm.ErrMissingAPIKey) {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error": "GEMINI_API_KEY is not set. Configure the text-generation credential and restart the server.",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 3: Return the generated text with the service's own metadata.
	ctx.JSON(http.StatusOK, generateTextResponse{
		Text:         result.Text,
		Usage:        result.Usage,
		FinishReason: result.FinishReason,
	})
}
