// Package llm talks to an OpenAI-compatible chat completions endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Dias221467/HealthHabit/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Sampling settings sent with every request.
const (
	topP              = 0.95
	topK              = 40
	repetitionPenalty = 1.1
)

var stopSequences = []string{"</s>", "Human:", "Assistant:", "User:", "System:"}

// ErrEmptyResponse is returned when the endpoint answers without any choices.
var ErrEmptyResponse = errors.New("llm returned no choices")

type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client executes single-turn prompts. It satisfies agents.Executor.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		apiKey:      opts.APIKey,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model             string        `json:"model"`
	Messages          []chatMessage `json:"messages"`
	MaxTokens         int           `json:"max_tokens,omitempty"`
	Temperature       float64       `json:"temperature"`
	TopP              float64       `json:"top_p"`
	TopK              int           `json:"top_k"`
	RepetitionPenalty float64       `json:"repetition_penalty"`
	Stop              []string      `json:"stop"`
	Stream            bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage,omitempty"`
}

// Execute sends the system prompt and task as a two-message conversation and
// returns the content of the first choice.
func (c *Client) Execute(ctx context.Context, systemPrompt, task string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: task})

	payload, err := json.Marshal(chatRequest{
		Model:             c.model,
		Messages:          messages,
		MaxTokens:         c.maxTokens,
		Temperature:       c.temperature,
		TopP:              topP,
		TopK:              topK,
		RepetitionPenalty: repetitionPenalty,
		Stop:              stopSequences,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completions endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", parseAPIError(resp.StatusCode, body)
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	fields := logrus.Fields{"model": c.model, "duration": time.Since(start).String()}
	if out.Usage != nil {
		fields["prompt_tokens"] = out.Usage.PromptTokens
		fields["completion_tokens"] = out.Usage.CompletionTokens
	}
	logger.Log.WithFields(fields).Debug("Completion received")

	return out.Choices[0].Message.Content, nil
}
