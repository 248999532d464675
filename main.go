package main

import (
	"log"
	"net/http"
	"time"

	"github.com/pranav244872/fitscope/analysis"
	"github.com/pranav244872/fitscope/api"
	"github.com/pranav244872/fitscope/config"
	"github.com/pranav244872/fitscope/llm"
	"github.com/pranav244872/fitscope/torre"
)

func main() {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("❌ could not load configuration: %v", err)
	}
	log.Println("✅ Configuration loaded successfully.")

	if cfg.GeminiAPIKey == "" {
		// The server still starts: the proxies work without a key, and the
		// generation endpoints report the missing credential per request.
		log.Println("⚠️  GEMINI_API_KEY is not set; analysis endpoints will fail until it is configured.")
	}

	// Step 2: Build the upstream platform client
	httpClient := &http.Client{Timeout: 30 * time.Second}
	torreClient := torre.NewClient(cfg.SearchAPIURL, cfg.JobsAPIURL, cfg.GenomeAPIURL, httpClient)
	log.Println("✅ Platform client initialized.")

	// Step 3: Build the text-generation client
	geminiClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel, httpClient)
	log.Printf("✅ Generation client initialized (default model: %s).", cfg.GeminiModel)

	// Step 4: Wire the fit analyzer
	analyzer := analysis.NewAnalyzer(torreClient, geminiClient)

	// Step 5: Create the API server instance
	server := api.NewServer(cfg, torreClient, geminiClient, analyzer)
	log.Println("✅ API server created.")

	// Step 6: Start the HTTP server
	log.Printf("🚀 Starting server on %s", cfg.ServerAddress)
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
