package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pranav244872/fitscope/analysis"
	"github.com/pranav244872/fitscope/config"
	"github.com/pranav244872/fitscope/llm"
	"github.com/pranav244872/fitscope/torre"
)

// Server serves HTTP requests for the candidate-fit dashboard. It fronts the
// three upstream platform endpoints and the text-generation service so the
// browser never talks to them directly (CORS, credential hiding).
type Server struct {
	config   config.Config
	torre    *torre.Client
	llm      llm.Client
	analyzer *analysis.Analyzer
	router   *gin.Engine
}

// NewServer wires the clients into a router with all routes registered.
func NewServer(cfg config.Config, torreClient *torre.Client, llmClient llm.Client, analyzer *analysis.Analyzer) *Server {
	server := &Server{
		config:   cfg,
		torre:    torreClient,
		llm:      llmClient,
		analyzer: analyzer,
	}

	router := gin.Default()
	router.Use(requestIDMiddleware())

	// Only the dashboard frontend is allowed through CORS.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", server.healthCheck)

		// Upstream proxies.
		api.POST("/search", server.searchJobs)
		api.GET("/jobs/:id", server.getJob)
		api.GET("/genome/:username", server.getGenome)

		// Text generation.
		api.POST("/ai", server.generateText)

		// Orchestrated fit analysis and its PDF export.
		api.POST("/analysis", server.analyzeFit)
		api.POST("/analysis/report", server.analyzeFitReport)
	}

	server.router = router
	return server
}

// Start runs the HTTP server on the given address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// healthCheck reports liveness for the frontend and for deploy probes.
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"status": "ok"})
}

// errorResponse shapes an error into the JSON body every failing endpoint
// returns.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
