package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature or a conversation key.
type Option func(*Options)

type Options struct {
	Temperature  float64
	Model        string // Override default model
	Conversation string // Continuity key the provider may use for multi-turn context
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithConversation(key string) Option {
	return func(o *Options) {
		o.Conversation = key
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
}
