package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skillgap/internal/analysis"
	"github.com/jonathan/skillgap/internal/config"
	"github.com/jonathan/skillgap/internal/ingestion"
	"github.com/jonathan/skillgap/internal/observability"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	analyzeConfigPath string
	analyzeKeywords   string
	analyzeSkills     string
	analyzeOutput     string
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [keyword-files...]",
	Short: "Compute the skill gap for one or more keyword files",
	Long: `Analyze matches a candidate's skills against extracted job-posting keywords.

With a single keyword file the result is written as one JSON object. With
several keyword files the analyses run concurrently and the results are
written as a JSON array, one entry per file.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file (or set SKILLGAP_CONFIG)")
	analyzeCmd.Flags().StringVar(&analyzeKeywords, "keywords", "", "Path to the extraction result JSON")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Path to the user skills JSON")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "Path to write results to (default stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print formatted analysis summaries")
	rootCmd.AddCommand(analyzeCmd)
}

// fileResult pairs a keyword file with its analysis in batch mode.
type fileResult struct {
	File   string             `json:"file"`
	Result *types.MatchResult `json:"result"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := loadAnalyzeConfig()
	if err != nil {
		return err
	}
	opts := mergeOptions(cfg, analyzeKeywords, analyzeSkills, analyzeOutput, analyzeVerbose, args)

	if len(opts.keywordFiles) == 0 {
		return fmt.Errorf("no keyword file given: use --keywords or positional arguments")
	}

	var skills []string
	if opts.skillsFile != "" {
		skills, err = ingestion.LoadUserSkills(opts.skillsFile)
		if err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(os.Stdout)

	if len(opts.keywordFiles) == 1 {
		result, err := analyzeFile(opts.keywordFiles[0], skills, opts.verbose, printer)
		if err != nil {
			return err
		}
		return writeOutput(opts.output, result)
	}

	// Batch mode: analyses are independent pure computations, so they run
	// concurrently, one goroutine per file.
	results := make([]fileResult, len(opts.keywordFiles))
	var g errgroup.Group
	for i, file := range opts.keywordFiles {
		i, file := i, file
		g.Go(func() error {
			result, err := analyzeFile(file, skills, false, nil)
			if err != nil {
				return err
			}
			results[i] = fileResult{File: file, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.verbose {
		for _, fr := range results {
			printer.PrintMatchResult(fr.Result)
		}
	}
	return writeOutput(opts.output, results)
}

func analyzeFile(path string, skills []string, verbose bool, printer *observability.Printer) (*types.MatchResult, error) {
	extraction, err := ingestion.LoadExtractionResult(path)
	if err != nil {
		return nil, err
	}

	req := &types.AnalyzeRequest{
		JobDescriptionKeywords: extraction.Keywords,
		UserSkills:             skills,
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis input %s: %w", path, err)
	}

	if verbose && printer != nil {
		printer.PrintInputSummary(len(req.JobDescriptionKeywords), len(req.UserSkills))
	}

	result := analysis.Analyze(req.JobDescriptionKeywords, req.UserSkills)

	if verbose && printer != nil {
		printer.PrintMatchResult(result)
	}
	return result, nil
}

// analyzeOptions is the effective option set after merging the config file
// with CLI flags. Flags win over the config file.
type analyzeOptions struct {
	keywordFiles []string
	skillsFile   string
	output       string
	verbose      bool
}

func loadAnalyzeConfig() (*config.Config, error) {
	path := analyzeConfigPath
	if path == "" {
		path = os.Getenv("SKILLGAP_CONFIG")
	}
	if path == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeOptions(cfg *config.Config, keywords, skills, output string, verbose bool, extraFiles []string) analyzeOptions {
	opts := analyzeOptions{
		skillsFile: cfg.Skills,
		output:     cfg.Output,
		verbose:    cfg.Verbose || verbose,
	}
	if skills != "" {
		opts.skillsFile = skills
	}
	if output != "" {
		opts.output = output
	}

	if keywords != "" {
		opts.keywordFiles = append(opts.keywordFiles, keywords)
	} else if cfg.Keywords != "" {
		opts.keywordFiles = append(opts.keywordFiles, cfg.Keywords)
	}
	opts.keywordFiles = append(opts.keywordFiles, extraFiles...)

	return opts
}

func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
