// Package main provides the entry point for the skill gap analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap",
	Short: "Skill Gap Analyzer",
	Long:  "Skill Gap Analyzer computes a relevance match between a job posting's extracted keywords and a candidate's self-reported skills, producing a ranked present/missing breakdown and an overall match percentage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
