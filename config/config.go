package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	INPUT_FILE=./data/input/transactions.csv
//	OUTPUT_FILE=./data/output/contract_sizes.csv
//	KEEP_FIRST_DATA_ROW=false
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Pipeline PipelineConfig // Input/output file settings for the extraction pipeline
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PipelineConfig defines the extraction pipeline's file locations and row
// selection.
//
// Fields:
//   - InputFile: path of the delimited transaction file to parse.
//   - OutputFile: path the normalized CSV is written to.
//   - KeepFirstDataRow: disables the historical exclusion of the first data
//     row (see pipeline.KeepFirstDataRow).
type PipelineConfig struct {
	InputFile        string
	OutputFile       string
	KeepFirstDataRow bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("INPUT_FILE", "./data/input/transactions.csv")
	viper.SetDefault("OUTPUT_FILE", "./data/output/contract_sizes.csv")
	viper.SetDefault("KEEP_FIRST_DATA_ROW", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Pipeline: PipelineConfig{
			InputFile:        viper.GetString("INPUT_FILE"),
			OutputFile:       viper.GetString("OUTPUT_FILE"),
			KeepFirstDataRow: viper.GetBool("KEEP_FIRST_DATA_ROW"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Pipeline.InputFile == "" {
		missing = append(missing, "INPUT_FILE")
	}
	if AppConfig.Pipeline.OutputFile == "" {
		missing = append(missing, "OUTPUT_FILE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
