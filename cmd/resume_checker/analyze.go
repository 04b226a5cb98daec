package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omkar/resume-checker/internal/analysis"
	"github.com/omkar/resume-checker/internal/ats"
	"github.com/omkar/resume-checker/internal/config"
	"github.com/omkar/resume-checker/internal/fetch"
	"github.com/omkar/resume-checker/internal/llm"
	"github.com/omkar/resume-checker/internal/logger"
	"github.com/omkar/resume-checker/internal/observability"
	"github.com/omkar/resume-checker/internal/roles"
	"github.com/omkar/resume-checker/internal/schemas"
	"github.com/omkar/resume-checker/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume and score its ATS compatibility",
	Long: `Parses a resume text file into structured fields, predicts suitable roles,
scores ATS compatibility, and optionally compares the resume against a job
description from a file or URL.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeOutput     string
	analyzeAPIKey     string
	analyzeModel      string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeJSONLogs   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Path to write the analysis JSON to (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")
	analyzeCmd.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON instead of console lines")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for the role classifier (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model override")

	rootCmd.AddCommand(analyzeCmd)
}

// analysisOutput is the JSON document the analyze command emits.
type analysisOutput struct {
	Analysis types.AnalysisResult `json:"analysis"`
	ATS      types.ATSResult      `json:"ats"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (or set 'resume' in the config file)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resumeBytes, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobDescription, err := loadJobDescription(ctx, cfg, log)
	if err != nil {
		return err
	}

	var classifier roles.Classifier
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer func() { _ = client.Close() }()
		classifier = llm.NewRoleClassifier(client, log)
	}

	analyzer := analysis.New(roles.NewPredictor(classifier), log)
	result := analyzer.Analyze(ctx, string(resumeBytes), jobDescription)
	if result.Error != "" {
		return fmt.Errorf("analysis failed: %s", result.Error)
	}

	if err := schemas.ValidateAnalysisResult(result); err != nil {
		log.Warn("analysis result failed schema validation", zap.Error(err))
	}

	doc := analysisOutput{
		Analysis: result,
		ATS:      ats.Score(result.ParsedResume, jobDescription, string(resumeBytes)),
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&result.ParsedResume)
		printer.PrintPredictions(result.RolePredictions)
		if jobDescription != "" {
			printer.PrintSimilarity(result.SimilarityScores)
		}
		printer.PrintATS(&doc.ATS)
		printer.PrintTips(result.OptimizationTips)
	}

	return writeOutput(cfg.Output, doc)
}

// mergedConfig loads the optional config file and applies CLI flag overrides.
// Only flags the user explicitly set override config file values.
func mergedConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.Load(analyzeConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = analyzeModel
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = analyzeJSONLogs
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &cfg, nil
}

func loadJobDescription(ctx context.Context, cfg *config.Config, log *zap.Logger) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		fetcher := fetch.New(fetch.Options{UseBrowser: cfg.UseBrowser}, log)
		text, err := fetcher.FetchJobDescription(ctx, cfg.JobURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}

func writeOutput(path string, doc analysisOutput) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
