package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 60 * time.Second

// ErrEmptyCompletion is returned when the model answers with no usable content.
var ErrEmptyCompletion = errors.New("empty completion from model")

// OpenRouterClient calls an OpenAI-style chat-completions endpoint via OpenRouter.
type OpenRouterClient struct {
	client *resty.Client
	model  string
}

// Ensure OpenRouterClient implements Client
var _ Client = (*OpenRouterClient)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenRouterClient creates a client for the given base URL, API key and model.
func NewOpenRouterClient(baseURL, apiKey, model string) *OpenRouterClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenRouterClient{
		client: client,
		model:  model,
	}
}

// Generate sends the prompt as a single user message and returns the completion text.
func (c *OpenRouterClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}

	var parsed chatResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&parsed).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return parsed.Choices[0].Message.Content, nil
}
