package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// @title Kusasa API
// @version 1.0
// @description AI-powered CV analysis and job matching for the South African market. A session walks a visitor from CV upload to ranked job matches with skill gaps and course recommendations.

// @contact.name API Support
// @contact.email support@kusasa.co.za

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token from POST /sessions.

var rootCmd = &cobra.Command{
	Use:   "kusasa",
	Short: "Kusasa CV analysis and job matching",
	Long:  "Kusasa extracts a candidate profile from a CV with Gemini and matches it against a job catalog, with skill gaps and upskilling courses per match.",
}

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
