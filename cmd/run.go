package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mpatkar/interviewgen/internal/config"
	"github.com/mpatkar/interviewgen/internal/interview"
	"github.com/mpatkar/interviewgen/internal/llm"
	"github.com/mpatkar/interviewgen/internal/llm/gemini"
	"github.com/mpatkar/interviewgen/internal/llm/groq"
	"github.com/mpatkar/interviewgen/internal/logger"
	"github.com/mpatkar/interviewgen/internal/resume"
	"github.com/mpatkar/interviewgen/internal/secrets"
	"github.com/mpatkar/interviewgen/internal/workflow"
)

const (
	PromptPrint = "Print result"
	PromptSave  = "Save result to file"
	PromptQuit  = "Quit"
)

var errExit = errors.New("exit requested")

var resultPrompt = promptui.Select{
	Label: "Questions ready. What next?",
	Items: []string{PromptPrint, PromptSave, PromptQuit},
}

var runCmd = &cobra.Command{
	Use:   "run [resume file]",
	Short: "Parse a resume and generate interview questions for it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("questions", "n", 0, "requested question count (0 means the configured maximum)")
	runCmd.Flags().StringP("output", "o", "", "write the result JSON to this file instead of prompting")
	runCmd.Flags().BoolP("auto-aprove", "y", false, "print the result and exit without prompting")
}

// run is the main command for the cli.
func run(cmd *cobra.Command, resumePath string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting interviewgen",
		zap.String("version", version),
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)

	generator, err := newLLMGenerator(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal("building llm client", zap.Error(err))
	}

	parser := resume.NewParser(
		resume.NewExtractor(logger),
		resume.NewInferencer(generator, logger),
		logger,
	)
	questionGen := interview.NewGenerator(generator, cfg.Interview, logger)

	wf := workflow.New(parser, questionGen, logger)

	requested, _ := cmd.Flags().GetInt("questions")

	state := wf.Run(ctx, resumePath, requested)

	result, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		logger.Fatal("marshaling result", zap.Error(err))
	}

	if state.Status == workflow.StatusFailed {
		fmt.Println(string(result))
		logger.Error("run failed", zap.String("reason", state.Error))
		os.Exit(1)
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err := os.WriteFile(output, result, 0o644); err != nil {
			logger.Fatal("writing result file", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
		return
	}

	if auto, _ := cmd.Flags().GetBool("auto-aprove"); auto {
		fmt.Println(string(result))
		return
	}

	for {
		_, action, err := resultPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, result []byte, logger *zap.Logger) error {
	switch action {
	case PromptPrint:
		fmt.Println(string(result))
		return nil
	case PromptSave:
		namePrompt := promptui.Prompt{
			Label:   "Filename",
			Default: "interview-questions.json",
		}
		filename, err := namePrompt.Run()
		if err != nil {
			return err
		}
		if err := os.WriteFile(filename, result, 0o644); err != nil {
			return fmt.Errorf("writing result to file: %w", err)
		}
		logger.Info("result written", zap.String("filename", filename))
		return nil
	case PromptQuit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// newLLMGenerator builds the configured provider's client. The API key is
// resolved from the config file or the provider's environment variable.
func newLLMGenerator(ctx context.Context, cfg *config.LLM) (llm.Generator, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  cfg.Provider + " api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
		Env:   cfg.APIKeyEnv(),
	})
	if err != nil {
		return nil, err
	}

	params := llm.Params{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(ctx, apiKey, params)
	case config.ProviderGroq:
		return groq.New(apiKey, params)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
