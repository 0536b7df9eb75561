// Package groq implements the Generator contract on top of Groq's
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mpatkar/interviewgen/internal/llm"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Client talks to Groq through the official openai-go SDK (chat completions).
type Client struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// New creates a Client for the Groq API. BaseURL points the OpenAI SDK at
// Groq's OpenAI-compatible endpoint.
func New(apiKey string, params llm.Params) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("groq api key is required")
	}
	if strings.TrimSpace(params.Model) == "" {
		return nil, errors.New("groq model is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(defaultBaseURL),
	)

	return &Client{
		client:      client,
		model:       params.Model,
		temperature: params.Temperature,
		maxTokens:   params.MaxTokens,
	}, nil
}

// GenerateContent sends the prompt as a single user message and returns the
// first choice's content.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", errors.New("groq client is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq api returned empty choices")
	}

	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	if output == "" {
		return "", errors.New("groq api returned empty response")
	}

	return output, nil
}

func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}
