package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-interviewer/internal/config"
	"github.com/jonathan/resume-interviewer/internal/dialog"
	"github.com/jonathan/resume-interviewer/internal/ingestion"
	"github.com/jonathan/resume-interviewer/internal/llm"
	"github.com/jonathan/resume-interviewer/internal/observability"
	"github.com/jonathan/resume-interviewer/internal/record"
	"github.com/jonathan/resume-interviewer/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive resume interview in the terminal",
	Long: `Starts a question-and-answer interview that builds a structured resume.
By default the interview is AI-assisted; --guided walks a fixed question
catalog without calling a model.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runInterviewCmd,
}

var (
	runConfigPath string
	runResumeFile string
	runResumeURL  string
	runOutput     string
	runModel      string
	runAPIKey     string
	runGuided     bool
	runUseBrowser bool
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runResumeFile, "resume", "r", "", "Path to an existing resume text file to pre-fill from (mutually exclusive with --resume-url)")
	runCommand.Flags().StringVar(&runResumeURL, "resume-url", "", "URL of an existing resume or profile page to pre-fill from (mutually exclusive with --resume)")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "resume.json", "Path to write the finished resume JSON")
	runCommand.Flags().StringVar(&runModel, "model", "", "Override the model name")
	runCommand.Flags().BoolVar(&runGuided, "guided", false, "Walk the fixed question catalog instead of AI mode")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JS-rendered profile pages (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed turn information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runInterviewCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// CLI flags take priority over config file values.
	if cmd.Flags().Changed("resume") {
		cfg.ResumeFile = runResumeFile
	}
	if cmd.Flags().Changed("resume-url") {
		cfg.ResumeURL = runResumeURL
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("guided") {
		cfg.Guided = runGuided
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	if cfg.ResumeFile != "" && cfg.ResumeURL != "" {
		return fmt.Errorf("--resume and --resume-url are mutually exclusive")
	}

	printer := observability.NewPrinter(os.Stdout)

	prefill, err := loadPrefill(ctx, &cfg, printer)
	if err != nil {
		return err
	}

	if cfg.Guided {
		return runGuidedInterview(prefill, printer)
	}
	return runAssistedInterview(ctx, &cfg, prefill, printer)
}

// loadPrefill ingests an existing resume source, if configured, and returns
// the proposed fields.
func loadPrefill(ctx context.Context, cfg *config.Config, printer *observability.Printer) ([]types.FieldProposal, error) {
	var text string
	var err error

	switch {
	case cfg.ResumeFile != "":
		text, _, err = ingestion.IngestFromFile(cfg.ResumeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to ingest resume file: %w", err)
		}
	case cfg.ResumeURL != "":
		text, _, err = ingestion.IngestFromURL(ctx, cfg.ResumeURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return nil, fmt.Errorf("failed to ingest resume URL: %w", err)
		}
	default:
		return nil, nil
	}

	proposals := ingestion.Prefill(text)
	if cfg.Verbose {
		printer.PrintPrefill(proposals)
	}
	return proposals, nil
}

func runGuidedInterview(prefill []types.FieldProposal, printer *observability.Printer) error {
	state := dialog.NewGuidedState()
	state.Record = record.Apply(state.Record, prefill)

	turn := dialog.StartGuided(state)
	fmt.Println(turn.Prompt)

	scanner := bufio.NewScanner(os.Stdin)
	for !turn.IsComplete && scanner.Scan() {
		answer := strings.TrimSpace(scanner.Text())
		var err error
		turn, err = dialog.AnswerGuided(state, answer)
		if err != nil {
			return fmt.Errorf("interview failed: %w", err)
		}
		fmt.Println()
		fmt.Println(turn.Prompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	printer.PrintRecordSummary(state.Record)
	printer.PrintReviewIssues(types.ReviewRecord(state.Record))
	return writeResume(runOutput, state.Record)
}

func runAssistedInterview(ctx context.Context, cfg *config.Config, prefill []types.FieldProposal, printer *observability.Printer) error {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("an API key is required for AI mode: pass --api-key, set GEMINI_API_KEY, or use --guided")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	orchestrator := dialog.New(client)
	state := dialog.NewAssistedState()
	state.Record = record.Apply(state.Record, prefill)

	greeting := "Hi! I'm here to help you build your resume, one question at a time. Which language would you like to use for your resume?"
	state.History = append(state.History, types.Message{Role: types.RoleAssistant, Content: greeting})
	fmt.Println(greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		outcome, err := orchestrator.ProcessTurn(ctx, dialog.TurnInput{
			History:     state.History,
			Record:      state.Record,
			State:       state.Section,
			Context:     state.Context,
			UserMessage: message,
		})
		if err != nil {
			return fmt.Errorf("interview failed: %w", err)
		}

		state.Record = outcome.Record
		state.Section = outcome.State
		state.History = append(state.History,
			types.Message{Role: types.RoleUser, Content: message},
			types.Message{Role: types.RoleAssistant, Content: outcome.Result.AssistantMessage},
		)

		fmt.Println()
		fmt.Println(outcome.Result.AssistantMessage)
		if cfg.Verbose {
			printer.PrintTurn(&outcome.Result, outcome.State)
		}

		if outcome.Result.IsComplete {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	printer.PrintRecordSummary(state.Record)
	printer.PrintReviewIssues(types.ReviewRecord(state.Record))
	return writeResume(runOutput, state.Record)
}

// writeResume writes the finished record as pretty-printed JSON.
func writeResume(path string, rec types.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	fmt.Printf("Resume written to %s\n", path)
	return nil
}
