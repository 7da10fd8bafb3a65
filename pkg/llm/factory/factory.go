package factory

import (
	"fmt"

	"thrapy-be/pkg/llm"
	"thrapy-be/pkg/llm/ollama"
	"thrapy-be/pkg/llm/openai"
)

// NewLLMProvider selects the chat backend from config.
func NewLLMProvider(provider, model, apiKey, baseURL, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch provider {
	case "openai":
		return openai.NewOpenAIProvider(baseURL, apiKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", provider)
	}
}
