// api/proxy_handler.go
package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pranav244872/fitscope/torre"
)

////////////////////////////////////////////////////////////////////////
// Upstream proxy endpoints
////////////////////////////////////////////////////////////////////////

// These handlers forward to the public platform endpoints and relay the
// upstream response verbatim, body and status alike. Nothing is retried: a
// failed upstream call is the caller's answer.

const defaultSearchSize = 10

// searchJobs forwards the filter body to the opportunity search endpoint.
// The size query parameter is passed through, defaulting to 10.
func (server *Server) searchJobs(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	size := defaultSearchSize
	if raw := ctx.Query("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = parsed
		}
	}

	result, err := server.torre.Search(ctx, body, size)
	if err != nil {
		relayUpstreamError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", result)
}

// getJob passes a job detail fetch through to the upstream endpoint.
func (server *Server) getJob(ctx *gin.Context) {
	result, err := server.torre.GetJobRaw(ctx, ctx.Param("id"))
	if err != nil {
		relayUpstreamError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", result)
}

// getGenome passes a candidate profile fetch through to the upstream endpoint.
func (server *Server) getGenome(ctx *gin.Context) {
	result, err := server.torre.GetGenomeRaw(ctx, ctx.Param("username"))
	if err != nil {
		relayUpstreamError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", result)
}

// relayUpstreamError maps a failed upstream call onto the proxy response: a
// non-2xx upstream answer is relayed with its own status and body, anything
// else (network failure, bad decode) becomes a 502.
func relayUpstreamError(ctx *gin.Context, err error) {
	var upstream *torre.UpstreamError
	if errors.As(err, &upstream) {
		log.Printf("upstream %s call failed with status %d (request %s)",
			upstream.Endpoint, upstream.StatusCode, ctx.GetString(requestIDContextKey))
		ctx.JSON(upstream.StatusCode, errorResponse(upstream))
		return
	}

	log.Printf("upstream call failed: %v (request %s)", err, ctx.GetString(requestIDContextKey))
	ctx.JSON(http.StatusBadGateway, errorResponse(err))
}
