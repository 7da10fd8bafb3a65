package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"thrapy-be/pkg/llm"
)

type OpenAIProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

// Ensure OpenAIProvider implements LLMProvider
var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(baseURL, apiKey, modelName string) *OpenAIProvider {
	return &OpenAIProvider{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	User        string        `json:"user,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// --- Interface Implementation ---

func (o *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := o.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: options.Temperature,
		// Conversation key rides in the "user" field so the provider can
		// correlate turns of the same session.
		User: options.Conversation,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := o.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai error: empty choices in response")
	}

	return completion.Choices[0].Message.Content, nil
}
