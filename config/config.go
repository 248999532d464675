package config

import (
	"github.com/spf13/viper"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // Address where the server will run (e.g., "0.0.0.0:8080")
	FrontendURL   string `mapstructure:"FRONTEND_URL"`   // Origin allowed by CORS (the dashboard frontend)

	SearchAPIURL string `mapstructure:"SEARCH_API_URL"` // Upstream opportunity search endpoint (POST)
	JobsAPIURL   string `mapstructure:"JOBS_API_URL"`   // Upstream job detail endpoint (GET <url>/{id})
	GenomeAPIURL string `mapstructure:"GENOME_API_URL"` // Upstream candidate profile endpoint (GET <url>/{username})

	GeminiAPIURL string `mapstructure:"GEMINI_API_URL"` // Text-generation endpoint base (model name is appended)
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"` // API key for the text-generation service
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`   // Default model when a request doesn't override it
}

// LoadConfig loads environment variables from a file and environment into the Config struct
func LoadConfig(path string) (config Config, err error) {
	// Add the directory where the config file is located
	viper.AddConfigPath(path)

	// Specify the name of the config file (without extension)
	viper.SetConfigName("app")

	// Specify the file type. In this case, we're using a .env-style file
	viper.SetConfigType("env")

	// Defaults for everything that has a sensible one. The API key deliberately
	// has no default: its absence is a distinguished, user-visible condition.
	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("SEARCH_API_URL", "https://search.torre.co/opportunities/_search")
	viper.SetDefault("JOBS_API_URL", "https://api.torre.co/suite/opportunities")
	viper.SetDefault("GENOME_API_URL", "https://torre.ai/api/genome/bios")
	viper.SetDefault("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-lite")

	// Automatically read in any environment variables that match the keys
	viper.AutomaticEnv()

	// Read the config file. A missing file is fine (pure-env deployments rely on
	// the defaults above plus real environment variables); any other error is returned.
	if err = viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return
		}
		err = nil
	}

	// Unmarshal the config values into the Config struct
	err = viper.Unmarshal(&config)

	// Return the filled config struct and any error encountered during unmarshaling
	return
}
